package utils

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/calyptia/getmein/config"
	"github.com/calyptia/getmein/provision"
)

const DefaultAlias = "GetMeIn"

// NewProvisioner returns a Provisioner using the clients in cfg and the
// streams of cmd.
func NewProvisioner(cfg *config.Config, cmd *cobra.Command) *provision.Provisioner {
	p := provision.New(cfg.GCP, cfg.Runner, cfg.Logger)
	p.In = cmd.InOrStdin()
	p.Out = cmd.OutOrStdout()
	if cfg.GcloudBinary != "" {
		p.Gcloud = cfg.GcloudBinary
	}
	p.Wait = cfg.SSHWait
	return p
}

// IsNonInteractive reports whether stdin is not a terminal, in which case
// prompts default to yes.
func IsNonInteractive() bool {
	return os.Stdin == nil || !term.IsTerminal(int(os.Stdin.Fd()))
}
