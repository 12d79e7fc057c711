package cmd

import (
	"fmt"
	"os"

	gnkore "github.com/gnames/gnkore/pkg"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnkore.Version, gnkore.Build)
		os.Exit(0)
	}
}
