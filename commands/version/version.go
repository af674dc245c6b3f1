package version

import (
	"github.com/spf13/cobra"
)

var Version = "dev" // To be injected at build time:  -ldflags="-X 'github.com/calyptia/getmein/commands/version.Version=xxx'"

func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "version",
		Short:        "Returns the current getmein version.",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(Version)
		},
	}

	return cmd
}
