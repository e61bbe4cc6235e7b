package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var projectPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "prdlens",
	Version: Version,
	Short:   "Score requirement documents for quality and complexity",
	Long: `Prdlens scores product requirement documents before work starts.
It answers three questions about a document:
1. What is missing? (quality checks against a fixed catalog)
2. What should be sharpened? (heuristic improvement findings)
3. How big is it? (a 1-10 complexity and effort estimate)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", "", "Workspace root (defaults to the current directory)")
}
