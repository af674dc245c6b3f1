package provision

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-version"

	"github.com/calyptia/getmein/config"
	"github.com/calyptia/getmein/gcp"
	"github.com/calyptia/getmein/shell"
)

var minimumSDKVersion = version.Must(version.NewVersion(gcp.MinimumSDKVersion))

// Resolver provides the settings an operation runs with.
type Resolver interface {
	Resolve() (config.Settings, error)
}

type InitOptions struct {
	// AssumeYes answers yes to the package manager.
	AssumeYes bool
}

// Init makes sure gcloud is installed and authenticated, then points its
// active configuration at the resolved project and zone.
func (p *Provisioner) Init(ctx context.Context, r Resolver, opts InitOptions) error {
	if err := p.ensureGcloud(ctx, opts.AssumeYes); err != nil {
		return err
	}

	s, err := r.Resolve()
	if err != nil {
		return err
	}

	p.Logger.Info("> INIT: Checking gcloud credentials.")
	ok, err := p.Client.HasCredentialedAccounts(ctx)
	if err != nil {
		return fmt.Errorf("could not list gcloud accounts: %w", err)
	}

	if !ok {
		p.Logger.Info("> INIT: No credentialed accounts, logging in.")
		if err := p.Client.Login(ctx); err != nil {
			return fmt.Errorf("could not login: %w", err)
		}
	}

	return p.SetConfig(ctx, s)
}

// SetConfig pushes project and zone into the active gcloud configuration.
func (p *Provisioner) SetConfig(ctx context.Context, s config.Settings) error {
	for _, prop := range []struct{ name, value string }{
		{"project", s.ProjectID},
		{"compute/zone", s.Zone},
	} {
		p.Logger.WithField(prop.name, prop.value).Info("> INIT: Setting gcloud property.")
		if err := p.Client.SetProperty(ctx, prop.name, prop.value); err != nil {
			return fmt.Errorf("could not set gcloud property %s: %w", prop.name, err)
		}
	}

	return nil
}

func (p *Provisioner) ensureGcloud(ctx context.Context, assumeYes bool) error {
	path, err := p.Runner.LookPath(p.Gcloud)
	if err == nil {
		p.Logger.Debugf("found gcloud at %s", path)
		p.checkVersion(ctx)
		return nil
	}

	p.Logger.Warnf("%s not found in PATH", p.Gcloud)

	if _, err := p.Runner.LookPath("rpm"); err != nil {
		return fmt.Errorf("%w, %w: install the google cloud sdk from %s", ErrGcloudNotFound, ErrUnsupportedSetup, gcp.InstallURL)
	}

	if err := p.addRepo(ctx); err != nil {
		return err
	}

	return p.installPackage(ctx, assumeYes)
}

func (p *Provisioner) checkVersion(ctx context.Context) {
	v, err := p.Client.Version(ctx)
	if err != nil {
		p.Logger.Warnf("could not read google cloud sdk version: %v", err)
		return
	}

	l := p.Logger.WithField("version", v.String())
	if v.LessThan(minimumSDKVersion) {
		l.Warnf("> INIT: Google Cloud SDK is older than %s, some commands might not be supported.", gcp.MinimumSDKVersion)
		return
	}
	l.Debug("google cloud sdk version is supported")
}

func (p *Provisioner) addRepo(ctx context.Context) error {
	p.Logger.Info("> INIT: Checking if the google-cloud-sdk.repo is present.")
	if _, err := os.Stat(p.RepoPath); err == nil {
		p.Logger.Info("> INIT: google-cloud-sdk.repo is present.")
		return nil
	}

	p.Logger.Info("> INIT: Adding google-cloud-sdk repository.")
	f, err := os.CreateTemp("", "google-cloud-sdk-*.repo")
	if err != nil {
		return fmt.Errorf("could not create temporary repo file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(gcp.RepoDefinition); err != nil {
		f.Close()
		return fmt.Errorf("could not write temporary repo file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not write temporary repo file: %w", err)
	}

	if err := p.Runner.Attached(ctx, "sudo", "cp", f.Name(), p.RepoPath); err != nil {
		return fmt.Errorf("could not add google-cloud-sdk repository: %w", err)
	}

	p.Logger.Info("> INIT: google-cloud-sdk.repo is added.")
	return nil
}

func (p *Provisioner) installPackage(ctx context.Context, assumeYes bool) error {
	_, err := p.Runner.Output(ctx, "rpm", "-q", PackageName)
	if err == nil {
		p.Logger.Infof("> INIT: %s is already installed.", PackageName)
		return nil
	}

	var exitErr *shell.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("could not query rpm database: %w", err)
	}

	args := []string{"dnf", "install", PackageName}
	if assumeYes {
		p.Logger.Info("> INIT: Proceeding with the installation.")
		args = append(args, "-y")
	}

	p.Logger.Infof("> INIT: Installing %s package.", PackageName)
	if err := p.Runner.Attached(ctx, "sudo", args...); err != nil {
		return fmt.Errorf("could not install %s: %w", PackageName, err)
	}

	return nil
}
