package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Use(t *testing.T) {
	assert.Equal(t, "check [file]", checkCmd.Use)
}

func TestCheckCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestCheckCmd_FileNotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCheckFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check", "/nonexistent/file.tex"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading /nonexistent/file.tex")
}

func TestCheckCmd_CleanDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCheckFlags()

	path := writeTempTex(t, `\section{Introduction}
Some text with a valid formula $a + b$.
\cite{knuth}
\bibitem{knuth} Knuth, The Art of Computer Programming.
`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Structure")
	assert.Contains(t, out, "Introduction")
	assert.Contains(t, out, "Terms")
	assert.Contains(t, out, "Formulas")
	assert.Contains(t, out, "Citations")
	assert.Contains(t, out, "Citations and bibliography match.")
}

func TestCheckCmd_ReportsProblems(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCheckFlags()

	path := writeTempTex(t, `\textit{Machine Learning} and later \textit{machine learning}.
An unbalanced formula $(a + b$.
\cite{missing}
`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "problem(s) found")

	out := buf.String()
	assert.Contains(t, out, "machine learning")
	assert.Contains(t, out, "mismatched parentheses")
	assert.Contains(t, out, "cited but not in bibliography: missing")
}

func TestCheckCmd_SelectsSingleCheck(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCheckFlags()

	// Formula problem present, but only citations selected.
	path := writeTempTex(t, `Broken formula $(a + b$ and no citations.`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check", path, "--citations"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Citations")
	assert.NotContains(t, out, "Formulas")
}

func TestCheckCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCheckFlags()

	path := writeTempTex(t, `\section{Intro}
Text with $x$.
`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check", path, "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"file"`)
	assert.Contains(t, out, `"structure"`)
	assert.Contains(t, out, `"citation_count"`)
}

func TestCheckCmd_UpdateTermsReplacesSharedTable(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCheckFlags()

	path := writeTempTex(t, `\term{Neural Network}`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check", path, "--terms", "--update-terms"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	table, err := termStore.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "Neural Network", table["neural network"])
}
