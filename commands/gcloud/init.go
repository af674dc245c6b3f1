package gcloud

import (
	"github.com/spf13/cobra"

	"github.com/calyptia/getmein/commands/utils"
	"github.com/calyptia/getmein/config"
	"github.com/calyptia/getmein/provision"
)

func NewCmdInit(cfg *config.Config) *cobra.Command {
	var assumeYes bool
	cmd := &cobra.Command{
		Use:   "init",
		Args:  cobra.NoArgs,
		Short: "Initialize the gcloud CLI.",
		Long: "Installs the google-cloud-cli package when gcloud is missing, logs in " +
			"when no account is credentialed and sets the default project and zone.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := utils.NewProvisioner(cfg, cmd)
			return p.Init(cmd.Context(), cfg, provision.InitOptions{AssumeYes: assumeYes})
		},
	}

	fs := cmd.Flags()
	fs.BoolVarP(&assumeYes, "yes", "y", utils.IsNonInteractive(), "Answers yes to all.")

	return cmd
}
