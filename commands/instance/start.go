package instance

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calyptia/getmein/commands/utils"
	"github.com/calyptia/getmein/completer"
	"github.com/calyptia/getmein/config"
	"github.com/calyptia/getmein/gcp"
	"github.com/calyptia/getmein/provision"
)

func NewCmdStart(cfg *config.Config) *cobra.Command {
	var req provision.Request
	cmd := &cobra.Command{
		Use:               "start INSTANCE_NAME OS",
		Short:             "Requests a new GCP instance.",
		Long:              fmt.Sprintf("Requests a new GCP instance from the latest image of OS. Choices: %s.", strings.Join(gcp.OSKeys(), ", ")),
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completer.CompleteOS,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Name = args[0]
			req.OS = args[1]

			if _, err := gcp.LookupImage(req.OS); err != nil {
				return err
			}

			s, err := cfg.Resolve()
			if err != nil {
				return err
			}

			return utils.NewProvisioner(cfg, cmd).Start(cmd.Context(), s, req)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&req.SSHKeyPath, "ssh-key-path", "", "Path to your SSH private key file.")
	fs.StringVar(&req.StartupScript, "startup-script", "", "Post-install script as a string.")
	fs.BoolVarP(&req.SSH, "ssh", "s", false, "Generates gcloud ssh keys and connects to the deployed instance.")
	fs.BoolVar(&req.AssumeYes, "yes", utils.IsNonInteractive(), "Skip the confirmation before connecting.")

	return cmd
}
