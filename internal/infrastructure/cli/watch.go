package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixgeelhaar/prdlens/internal/infrastructure/watch"
	"github.com/felixgeelhaar/prdlens/pkg/application"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyze a document whenever it changes on disk",
	Long: `Watch analyzes the document immediately, then re-runs the analysis after
every save. Rapid edits are debounced; only the most recent version of
the document ends up as the stored report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadInitializedServices()
		if err != nil {
			return err
		}

		path := args[0]
		session := application.NewAnalysisSession(services.Analysis)
		out := cmd.OutOrStdout()

		analyzeOnce := func(path string) {
			// #nosec G304 -- watching a user-named file is the point of the command
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(out, "Failed to read %s: %v\n", path, err)
				return
			}
			report, installed, err := session.Submit(string(data), path)
			if err != nil {
				fmt.Fprintf(out, "Analysis failed: %v\n", MapError(err))
				return
			}
			if !installed {
				return
			}
			fmt.Fprintf(out, "\nAnalyzed %s at %s\n", path, time.Now().Format("15:04:05"))
			renderReport(out, report)
		}

		analyzeOnce(path)

		if os.Getenv("PRDLENS_WATCH_ONCE") == "true" {
			return nil
		}

		watcher, err := watch.NewDocumentWatcher(path, services.Debounce, analyzeOnce)
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(out, "Watching %s for changes... (Ctrl-C to stop)\n", path)
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
