package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/brackets/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "brackets v%s\n", version.Platform)
		fmt.Fprintf(w, "  Parser:     %s\n", version.Parser)
		fmt.Fprintf(w, "  REPL:       %s\n", version.REPL)
		fmt.Fprintf(w, "  Git Commit: %s\n", version.Commit)
		fmt.Fprintf(w, "  Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(w, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
