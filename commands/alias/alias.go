package alias

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calyptia/getmein/commands/utils"
	"github.com/calyptia/getmein/config"
	"github.com/calyptia/getmein/formatters"
)

const aliasTemplate = `alias {{ .Name }}={{ .Command | quote }}`

func NewCmdAlias(cfg *config.Config) *cobra.Command {
	var (
		name       string
		profile    string
		executable string
	)
	cmd := &cobra.Command{
		Use:   "alias",
		Args:  cobra.NoArgs,
		Short: "Set an alias for the utility invocation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if executable == "" {
				exe, err := os.Executable()
				if err != nil {
					return fmt.Errorf("could not find the getmein executable: %w", err)
				}
				executable = exe
			}

			if profile == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("could not get user home dir: %w", err)
				}
				profile = filepath.Join(home, ".bashrc")
			}

			var line bytes.Buffer
			line.WriteString("\n")
			err := formatters.ApplyGoTemplate(&line, aliasTemplate, struct{ Name, Command string }{name, executable})
			if err != nil {
				return err
			}

			cfg.Logger.Infof("> ALIAS: Setting an alias %s in %s", name, profile)

			f, err := os.OpenFile(profile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("could not open %s: %w", profile, err)
			}
			defer f.Close()

			if _, err := line.WriteTo(f); err != nil {
				return fmt.Errorf("could not write alias to %s: %w", profile, err)
			}

			cfg.Logger.Infof("> ALIAS: Alias has been set, run `source %s` so you can invoke the utility with %s <subcommand> [options].", profile, name)
			return f.Close()
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&name, "custom", utils.DefaultAlias, "Set a custom alias.")
	fs.StringVar(&profile, "profile", "", "Shell profile the alias is appended to (default ~/.bashrc)")
	fs.StringVar(&executable, "executable", "", "Command the alias runs (default the running getmein binary)")
	_ = fs.MarkHidden("executable")

	return cmd
}
