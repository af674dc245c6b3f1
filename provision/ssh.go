package provision

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/time/rate"

	"github.com/calyptia/getmein/config"
	"github.com/calyptia/getmein/confirm"
	"github.com/calyptia/getmein/formatters"
	"github.com/calyptia/getmein/gcp"
)

var countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

type SSHRequest struct {
	Name string
	// KeyPath is the private key to use instead of the gcloud managed one.
	KeyPath   string
	AssumeYes bool
}

// SSH waits for the instance to boot, asks for confirmation and then opens
// an SSH session as root through gcloud.
func (p *Provisioner) SSH(ctx context.Context, s config.Settings, req SSHRequest) error {
	opts := gcp.SSHOptions{
		Instance:  req.Name,
		User:      gcp.DefaultSSHUser,
		Zone:      s.Zone,
		ProjectID: s.ProjectID,
		KeyFile:   req.KeyPath,
	}

	if err := p.countdown(ctx); err != nil {
		return err
	}

	p.Logger.Infof("> START: The script will now call the '%s compute ssh %s@%s' command.", p.Gcloud, opts.User, opts.Instance)

	keyPath := req.KeyPath
	if keyPath == "" {
		keyPath = filepath.Join(p.KeyDir, KeyName)
		p.Logger.Infof("> START: This will generate new gcloud ssh keys under %s(.pub) and inject them in /root/.ssh/authorized_keys", keyPath)
	} else {
		p.Logger.Infof("> START: This will inject the %s(.pub) key in /root/.ssh/authorized_keys", keyPath)
	}

	if keyPairExists(keyPath) {
		p.Logger.Info("> START: The ssh keys were found, they won't be regenerated.")
	}

	if !req.AssumeYes {
		if err := confirm.Ask(p.In, p.Out); err != nil {
			if errors.Is(err, ErrDeclined) {
				p.Logger.Info("Exiting.")
			}
			return err
		}
	}

	p.Logger.Info("Proceeding with the gcloud ssh command.")
	if err := p.Client.SSH(ctx, opts); err != nil {
		return fmt.Errorf("could not ssh into %q: %w", req.Name, err)
	}

	return nil
}

// countdown writes one line per tick until Wait has elapsed.
func (p *Provisioner) countdown(ctx context.Context) error {
	if p.Wait <= 0 || p.Tick <= 0 {
		return nil
	}

	p.Logger.Infof("Waiting for %s for the instance to become alive.", formatters.FmtDuration(p.Wait))

	limiter := rate.NewLimiter(rate.Every(p.Tick), 1)
	limiter.Allow()

	for n := int(p.Wait / p.Tick); n > 0; n-- {
		fmt.Fprint(p.Out, "\r"+countdownStyle.Render(fmt.Sprintf("Waiting: %d seconds remaining.", n))+" ")
		if err := limiter.Wait(ctx); err != nil {
			fmt.Fprintln(p.Out)
			return fmt.Errorf("countdown interrupted: %w", err)
		}
	}
	fmt.Fprintln(p.Out)

	return nil
}

func keyPairExists(path string) bool {
	for _, p := range []string{path, path + ".pub"} {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}
