package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/texpilot/texpilot/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch a LaTeX file and re-check on save",
	Long: `Watch a LaTeX file and re-run the selected checks every time it
is saved. The same selection flags as 'check' apply.

Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&checkStructure, "structure", false, "Report the section structure")
	watchCmd.Flags().BoolVar(&checkTerms, "terms", false, "Check terminology consistency")
	watchCmd.Flags().BoolVar(&checkFormulas, "formulas", false, "Check formulas")
	watchCmd.Flags().BoolVar(&checkCitations, "citations", false, "Cross-reference citations")
	watchCmd.Flags().BoolVar(&updateTerms, "update-terms", false, "Replace the shared term table on each run")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	// Watch the directory, not the file: editors replace files on save
	// and a watch on the old inode would go stale.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Editors fire several events per save; the limiter collapses each
	// burst into one check run. Interval is configurable via the
	// watch.debounce key (milliseconds).
	debounce := 500 * time.Millisecond
	if configStore != nil {
		if ms := configStore.GetInt("watch.debounce"); ms > 0 {
			debounce = time.Duration(ms) * time.Millisecond
		}
	}
	limiter := rate.NewLimiter(rate.Every(debounce), 1)

	cmd.Printf("Watching %s (Ctrl+C to stop)\n\n", path)
	runAndPrint(cmd, path)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !limiter.Allow() {
				logger.Debug("watch: suppressed burst event for %s", event.Name)
				continue
			}
			cmd.Printf("--- %s changed at %s ---\n\n", filepath.Base(path), time.Now().Format("15:04:05"))
			runAndPrint(cmd, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// runAndPrint runs the checks and prints the report. Lint findings are
// reported inline rather than terminating the watch.
func runAndPrint(cmd *cobra.Command, path string) {
	report, err := analyzeFile(cmd, path)
	if err != nil {
		cmd.PrintErrf("check failed: %v\n", err)
		return
	}
	printReport(cmd, report)
}
