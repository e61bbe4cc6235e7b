package cli

import (
	"fmt"

	"github.com/felixgeelhaar/prdlens/internal/infrastructure/config"
	"github.com/felixgeelhaar/prdlens/internal/infrastructure/watch"
	"github.com/felixgeelhaar/prdlens/pkg/application"
	"github.com/felixgeelhaar/prdlens/pkg/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a prdlens workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		repo := storage.NewFilesystemRepository(root)

		if repo.IsInitialized() {
			fmt.Println("Workspace already initialized.")
			return nil
		}

		if err := repo.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		cfg := &config.Config{
			HistoryLimit: application.DefaultHistoryLimit,
			DebounceMs:   int(watch.DefaultDebounce.Milliseconds()),
			QualityGate:  application.DefaultQualityGate,
		}
		if err := config.Save(root, cfg); err != nil {
			return fmt.Errorf("failed to write default config: %w", err)
		}

		fmt.Printf("Initialized prdlens workspace in %s\n", root)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
