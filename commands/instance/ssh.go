package instance

import (
	"github.com/spf13/cobra"

	"github.com/calyptia/getmein/commands/utils"
	"github.com/calyptia/getmein/config"
	"github.com/calyptia/getmein/provision"
)

func NewCmdSSH(cfg *config.Config) *cobra.Command {
	var req provision.SSHRequest
	cmd := &cobra.Command{
		Use:   "ssh INSTANCE_NAME",
		Short: "Generates gcloud ssh keys and connects to the deployed instance.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Name = args[0]

			return utils.NewProvisioner(cfg, cmd).SSH(cmd.Context(), cfg.Lookup(), req)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&req.KeyPath, "ssh-key-path", "", "Path to your SSH private key file.")
	fs.BoolVar(&req.AssumeYes, "yes", utils.IsNonInteractive(), "Skip the confirmation before connecting.")

	return cmd
}
