package commands

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/calyptia/getmein/commands/alias"
	"github.com/calyptia/getmein/commands/gcloud"
	"github.com/calyptia/getmein/commands/instance"
	"github.com/calyptia/getmein/commands/version"
	"github.com/calyptia/getmein/config"
	"github.com/calyptia/getmein/exitcode"
	"github.com/calyptia/getmein/gcp"
	"github.com/calyptia/getmein/logger"
	"github.com/calyptia/getmein/shell"
)

// NewRootCmd returns the getmein command tree configured from the
// environment.
func NewRootCmd() *cobra.Command {
	env, envErr := config.LoadEnv()

	cfg := &config.Config{
		Path:           env.Config,
		Zone:           env.Zone,
		ProjectID:      env.ProjectID,
		ServiceAccount: env.ServiceAccount,
		Debug:          env.Debug,
		GcloudBinary:   env.Gcloud,
		SSHWait:        env.SSHWait,
	}

	cmd := NewRootCmdWithConfig(cfg)
	prerun := cmd.PersistentPreRunE
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if envErr != nil {
			return exitcode.Fatal(envErr)
		}
		return prerun(cmd, args)
	}

	return cmd
}

// NewRootCmdWithConfig returns the getmein command tree around cfg.
// Clients already set in cfg are kept.
func NewRootCmdWithConfig(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "getmein",
		Short:         "Provision a GCP instance from a Marketplace image.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Logger == nil {
				cfg.Logger = logrus.NewEntry(logger.New(cmd.ErrOrStderr(), cfg.Debug))
			} else if cfg.Debug {
				cfg.Logger.Logger.SetLevel(logrus.DebugLevel)
			}

			created, err := config.Seed(cfg.Path)
			if err != nil {
				cfg.Logger.Warnf("could not seed config file: %v", err)
			} else if created {
				cfg.Logger.Infof("Config file created at %s", cfg.Path)
			}

			if cfg.Runner == nil {
				cfg.Runner = shell.New(cfg.Logger)
			}
			if cfg.GCP == nil {
				cfg.GCP = gcp.New(cfg.Runner, cfg.GcloudBinary)
			}

			return nil
		},
	}

	cmd.SetOut(os.Stdout)

	bindGlobalFlags(cmd.PersistentFlags(), cfg)

	cmd.AddCommand(
		gcloud.NewCmdInit(cfg),
		gcloud.NewCmdSet(cfg),
		instance.NewCmdStart(cfg),
		instance.NewCmdSSH(cfg),
		alias.NewCmdAlias(cfg),
		version.NewVersionCommand(),
	)

	return cmd
}

// bindGlobalFlags binds the flags shared by every command. Their defaults
// are the values cfg already holds from the environment.
func bindGlobalFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging.")
	fs.StringVar(&cfg.Zone, "zone", cfg.Zone, "Specify the region/zone for the deployment.")
	fs.StringVar(&cfg.ProjectID, "project-id", cfg.ProjectID, "Specify the project ID for the deployment.")
	fs.StringVar(&cfg.ServiceAccount, "service-account", cfg.ServiceAccount, "Service account attached to new instances.")
	fs.StringVar(&cfg.Path, "config", cfg.Path, "Path to the getmein config file.")
}

// Execute runs cmd with args after NormalizeArgs.
func Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetArgs(NormalizeArgs(cmd, args))
	return cmd.ExecuteContext(ctx)
}

// NormalizeArgs rewrites a bare -ssh into --ssh. Without it pflag reads
// the token as the shorthands -s -s -h and prints the help instead.
// Tokens after "--" and values of flags that take an argument are kept.
func NormalizeArgs(root *cobra.Command, args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	for i, arg := range out {
		if arg == "--" {
			break
		}
		if arg != "-ssh" {
			continue
		}
		if i > 0 && takesValue(root, out[i-1]) {
			continue
		}
		out[i] = "--ssh"
	}

	return out
}

// takesValue reports whether arg is a long flag of root or one of its
// subcommands that consumes the next token.
func takesValue(root *cobra.Command, arg string) bool {
	if !strings.HasPrefix(arg, "--") || strings.Contains(arg, "=") {
		return false
	}

	name := strings.TrimPrefix(arg, "--")
	cmds := append([]*cobra.Command{root}, root.Commands()...)
	for _, c := range cmds {
		for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
			if f := fs.Lookup(name); f != nil {
				return f.NoOptDefVal == ""
			}
		}
	}

	return false
}
