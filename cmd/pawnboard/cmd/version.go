package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/pawnboard/pkg/core/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()

		if versionShort {
			fmt.Fprintln(out, info.String())
			return
		}

		fmt.Fprintf(out, "pawnboard v%s\n", info.Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", info.Commit)
		fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		fmt.Fprintf(out, "  Protokoll:  %d\n", info.Protocol)
		fmt.Fprintln(out, "  Komponenten:")
		for _, name := range version.Components {
			fmt.Fprintf(out, "    %-8s %s\n", name, info.Components[name])
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "Nur eine Zeile ausgeben")
}
