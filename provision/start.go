package provision

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/calyptia/getmein/config"
	"github.com/calyptia/getmein/gcp"
)

// Request describes the instance Start creates.
type Request struct {
	Name string
	// OS is a key of gcp.Images.
	OS            string
	StartupScript string
	SSHKeyPath    string
	// SSH connects to the instance once it is created.
	SSH       bool
	AssumeYes bool
}

// Start creates a new instance from the latest image of the requested OS
// family, then optionally connects to it.
func (p *Provisioner) Start(ctx context.Context, s config.Settings, req Request) error {
	family, err := gcp.LookupImage(req.OS)
	if err != nil {
		return err
	}

	if err := p.EnsureUnique(ctx, req.Name, s.ProjectID); err != nil {
		return err
	}

	img, err := p.LatestImage(ctx, req.OS, family)
	if err != nil {
		return err
	}

	cfg := gcp.NewInstanceConfig(s.ProjectID, s.Zone, req.Name)
	cfg.SetImage(img.Path()).
		SetStartupScript(req.StartupScript).
		SetServiceAccount(s.ServiceAccount)

	if cfg.ServiceAccount == "" {
		p.Logger.Warn("> START: No service account configured, the project default will be used.")
	}

	p.Logger.Infof("> START: Creating the instance %s", req.Name)
	if err := p.Client.CreateInstance(ctx, cfg); err != nil {
		return fmt.Errorf("could not create instance %q: %w", req.Name, err)
	}

	if !req.SSH {
		return nil
	}

	return p.SSH(ctx, s, SSHRequest{
		Name:      req.Name,
		KeyPath:   req.SSHKeyPath,
		AssumeYes: req.AssumeYes,
	})
}

// EnsureUnique fails with ErrInstanceExists when an instance named name is
// already listed in the project.
func (p *Provisioner) EnsureUnique(ctx context.Context, name, projectID string) error {
	p.Logger.Infof("> START: Verifying that the %s instance doesn't exist.", name)

	out, err := p.Client.ListInstances(ctx, gcp.InstanceFilter{Name: name, ProjectID: projectID})
	if err != nil {
		return fmt.Errorf("could not list instances: %w", err)
	}

	if strings.TrimSpace(out) == "" {
		return nil
	}

	p.Logger.Errorf("The instance of the name %s already exists.", name)
	p.Logger.Error("Please provide different name for the deployed instance, or use the existing one.")
	p.Logger.Errorf("The conflicting instance info:\n%s", strings.TrimRight(out, "\n"))

	return fmt.Errorf("%w: %s", ErrInstanceExists, name)
}

// LatestImage resolves the newest image of family.
func (p *Provisioner) LatestImage(ctx context.Context, osKey string, family gcp.ImageFamily) (gcp.Image, error) {
	p.Logger.Infof("> START: Getting the latest image for the requested OS %s", osKey)

	img, err := p.Client.DescribeImageFamily(ctx, family)
	if err != nil {
		return gcp.Image{}, fmt.Errorf("could not describe image family %s: %w", family.Family, err)
	}

	p.Logger.WithFields(logrus.Fields{
		"family":  img.Family,
		"created": img.CreationTimestamp,
		"status":  img.Status,
	}).Debug("image details")
	p.Logger.Infof("> START: Latest image found to be %s !", img.Name)

	return img, nil
}
