package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/texpilot/texpilot/internal/adapters/driven/storage/memory"
	"github.com/texpilot/texpilot/internal/core/services"
)

// setupTestServices wires the analysis service against an in-memory
// term store so commands run without touching the user's home
// directory. Returns a cleanup function restoring the previous wiring.
func setupTestServices() func() {
	oldAnalysis := analysisService
	oldTermStore := termStore

	termStore = memory.NewTermStore()
	analysisService = services.NewAnalysisService(termStore)

	return func() {
		analysisService = oldAnalysis
		termStore = oldTermStore
	}
}

// resetCheckFlags restores the check selection flags to their defaults.
func resetCheckFlags() {
	checkStructure = false
	checkTerms = false
	checkFormulas = false
	checkCitations = false
	checkJSON = false
	updateTerms = false
}

// writeTempTex writes content to a temporary .tex file and returns its path.
func writeTempTex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.tex")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}
