package gcloud

import (
	"github.com/spf13/cobra"

	"github.com/calyptia/getmein/commands/utils"
	"github.com/calyptia/getmein/config"
)

func NewCmdSet(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Args:  cobra.NoArgs,
		Short: "Set the gcloud project and zone from flags or the config file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg.Resolve()
			if err != nil {
				return err
			}

			return utils.NewProvisioner(cfg, cmd).SetConfig(cmd.Context(), s)
		},
	}

	return cmd
}
