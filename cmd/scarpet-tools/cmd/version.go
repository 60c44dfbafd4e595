package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	scarpet "github.com/FedericoCarboni/scarpet-parser"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scarpet-tools v%s\n", scarpet.Version)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
