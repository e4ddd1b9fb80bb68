package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/texpilot/texpilot/internal/core/domain"
	"github.com/texpilot/texpilot/internal/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run analysis checks on a LaTeX file",
	Long: `Run structural, terminology, formula and citation checks on a
LaTeX file and print a report.

By default all checks run. Pass one or more of --structure, --terms,
--formulas or --citations to restrict the report to those checks.

The command exits non-zero when any check finds a problem, so it can
be used as a pre-commit or CI gate.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// Check selection flags. When none is set, every check runs.
var (
	checkStructure bool
	checkTerms     bool
	checkFormulas  bool
	checkCitations bool
	checkJSON      bool
	updateTerms    bool
)

func init() {
	checkCmd.Flags().BoolVar(&checkStructure, "structure", false, "Report the section structure")
	checkCmd.Flags().BoolVar(&checkTerms, "terms", false, "Check terminology consistency")
	checkCmd.Flags().BoolVar(&checkFormulas, "formulas", false, "Check formulas")
	checkCmd.Flags().BoolVar(&checkCitations, "citations", false, "Cross-reference citations")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output the report as JSON")
	checkCmd.Flags().BoolVar(&updateTerms, "update-terms", false, "Replace the shared term table with this file's terms")

	rootCmd.AddCommand(checkCmd)
}

// Styles for terminal output. Applied only when stdout is a TTY.
var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// styled renders s with the given style when stdout is a terminal,
// otherwise returns s unchanged so piped output stays plain.
func styled(style lipgloss.Style, s string) string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return style.Render(s)
	}
	return s
}

// checkReport aggregates the selected check results for one file.
type checkReport struct {
	File      string                 `json:"file"`
	Structure *domain.Document       `json:"structure,omitempty"`
	Terms     *domain.TermReport     `json:"terms,omitempty"`
	Formulas  *domain.FormulaReport  `json:"formulas,omitempty"`
	Citations *domain.CitationReport `json:"citations,omitempty"`
}

// problemCount is the number of findings that should fail the check.
// Structural output is informational and never counts.
func (r *checkReport) problemCount() int {
	n := 0
	if r.Terms != nil {
		n += len(r.Terms.Inconsistencies)
	}
	if r.Formulas != nil {
		n += len(r.Formulas.Errors)
	}
	if r.Citations != nil {
		n += len(r.Citations.MissingReferences)
		n += len(r.Citations.UnusedReferences)
	}
	return n
}

func runCheck(cmd *cobra.Command, args []string) error {
	report, err := analyzeFile(cmd, args[0])
	if err != nil {
		return err
	}

	if checkJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling report: %w", err)
		}
		cmd.Println(string(data))
	} else {
		printReport(cmd, report)
	}

	if n := report.problemCount(); n > 0 {
		return fmt.Errorf("%d problem(s) found", n)
	}
	return nil
}

// analyzeFile reads path and runs the selected checks against it.
func analyzeFile(cmd *cobra.Command, path string) (*checkReport, error) {
	if analysisService == nil {
		return nil, errors.New("analysis service not configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)

	runID := uuid.NewString()
	logger.Debug("check run %s: %s (%d bytes)", runID, path, len(data))

	// No selection means everything.
	all := !checkStructure && !checkTerms && !checkFormulas && !checkCitations

	ctx := cmd.Context()
	report := &checkReport{File: path}

	if all || checkStructure {
		doc, err := analysisService.ParseStructure(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("parsing structure: %w", err)
		}
		report.Structure = &doc
	}

	if all || checkTerms {
		terms, err := analysisService.CheckTerms(ctx, text, updateTerms)
		if err != nil {
			return nil, fmt.Errorf("checking terms: %w", err)
		}
		report.Terms = &terms
	}

	if all || checkFormulas {
		formulas, err := analysisService.CheckFormulas(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("checking formulas: %w", err)
		}
		report.Formulas = &formulas
	}

	if all || checkCitations {
		citations, err := analysisService.AnalyzeCitations(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("analyzing citations: %w", err)
		}
		report.Citations = &citations
	}

	logger.Debug("check run %s: %d problem(s)", runID, report.problemCount())
	return report, nil
}

func printReport(cmd *cobra.Command, report *checkReport) {
	cmd.Printf("%s\n\n", styled(headingStyle, report.File))

	if report.Structure != nil {
		cmd.Println(styled(headingStyle, "Structure"))
		if len(report.Structure.Sections) == 0 {
			cmd.Println("  (no sections)")
		}
		for i := range report.Structure.Sections {
			sec := &report.Structure.Sections[i]
			cmd.Printf("  %s\n", sec.Title)
			for _, sub := range sec.Subsections {
				cmd.Printf("    %s\n", sub.Title)
			}
		}
		cmd.Println()
	}

	if report.Terms != nil {
		cmd.Println(styled(headingStyle, "Terms"))
		cmd.Printf("  Tracked terms: %d\n", len(report.Terms.Terms))
		if len(report.Terms.Inconsistencies) == 0 {
			cmd.Printf("  %s\n", styled(okStyle, "No inconsistencies."))
		}
		for _, inc := range report.Terms.Inconsistencies {
			cmd.Printf("  %s '%s' vs '%s': %s\n",
				styled(warnStyle, "inconsistent"), inc.Variant, inc.Original, inc.Suggestion)
		}
		cmd.Println()
	}

	if report.Formulas != nil {
		cmd.Println(styled(headingStyle, "Formulas"))
		total := 0
		for _, cat := range domain.AllFormulaCategories() {
			total += len(report.Formulas.Formulas.ByCategory(cat))
		}
		cmd.Printf("  Formulas found: %d\n", total)
		if len(report.Formulas.Errors) == 0 {
			cmd.Printf("  %s\n", styled(okStyle, "No errors."))
		}
		for _, e := range report.Formulas.Errors {
			cmd.Printf("  %s %s\n", styled(errorStyle, "error"), e)
		}
		for _, s := range report.Formulas.Suggestions {
			cmd.Printf("  %s %s\n", styled(warnStyle, "hint"), s)
		}
		cmd.Println()
	}

	if report.Citations != nil {
		cmd.Println(styled(headingStyle, "Citations"))
		cmd.Printf("  Cited: %d  Declared: %d\n",
			report.Citations.CitationCount, report.Citations.BibliographyCount)
		if len(report.Citations.MissingReferences) == 0 && len(report.Citations.UnusedReferences) == 0 {
			cmd.Printf("  %s\n", styled(okStyle, "Citations and bibliography match."))
		}
		for _, key := range report.Citations.MissingReferences {
			cmd.Printf("  %s cited but not in bibliography: %s\n", styled(errorStyle, "missing"), key)
		}
		for _, key := range report.Citations.UnusedReferences {
			cmd.Printf("  %s in bibliography but never cited: %s\n", styled(warnStyle, "unused"), key)
		}
		cmd.Println()
	}
}
