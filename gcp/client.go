// Package gcp drives the gcloud command-line client.
package gcp

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/calyptia/getmein/shell"
)

const (
	DefaultBinary  = "gcloud"
	DefaultSSHUser = "root"
	InstallURL     = "https://cloud.google.com/sdk/docs/install"

	// MinimumSDKVersion is the oldest Cloud SDK release known to support
	// every flag the instance creation policy passes.
	MinimumSDKVersion = "367.0.0"

	noCredentialedAccounts = "No credentialed accounts"
)

// RepoDefinition is the dnf repository file providing google-cloud-cli.
//
//go:embed assets/google-cloud-sdk.repo
var RepoDefinition string

var sdkVersionPattern = regexp.MustCompile(`(?m)^Google Cloud SDK (\S+)`)

//go:generate moq -out client_mock.go . Client
type Client interface {
	Version(ctx context.Context) (*version.Version, error)
	HasCredentialedAccounts(ctx context.Context) (bool, error)
	Login(ctx context.Context) error
	SetProperty(ctx context.Context, property, value string) error
	DescribeImageFamily(ctx context.Context, family ImageFamily) (Image, error)
	ListInstances(ctx context.Context, filter InstanceFilter) (string, error)
	CreateInstance(ctx context.Context, config InstanceConfig) error
	SSH(ctx context.Context, opts SSHOptions) error
}

// InstanceFilter restricts "gcloud compute instances list" to an exact name.
type InstanceFilter struct {
	Name      string
	ProjectID string
}

// SSHOptions configures "gcloud compute ssh".
type SSHOptions struct {
	Instance  string
	User      string
	Zone      string
	ProjectID string
	KeyFile   string
}

type DefaultClient struct {
	binary string
	runner shell.Runner
}

func New(runner shell.Runner, binary string) *DefaultClient {
	if binary == "" {
		binary = DefaultBinary
	}
	return &DefaultClient{binary: binary, runner: runner}
}

func (c *DefaultClient) Version(ctx context.Context) (*version.Version, error) {
	res, err := c.runner.Output(ctx, c.binary, "version")
	if err != nil {
		return nil, err
	}

	return ParseSDKVersion(res.Stdout)
}

// ParseSDKVersion reads the "Google Cloud SDK X.Y.Z" line of "gcloud version".
func ParseSDKVersion(output string) (*version.Version, error) {
	m := sdkVersionPattern.FindStringSubmatch(output)
	if m == nil {
		return nil, ErrSDKVersionNotFound
	}

	v, err := version.NewVersion(m[1])
	if err != nil {
		return nil, fmt.Errorf("could not parse google cloud sdk version %q: %w", m[1], err)
	}

	return v, nil
}

// HasCredentialedAccounts reports whether "gcloud auth list" knows about any
// account. gcloud exits successfully either way and only reports the
// missing accounts on stderr, so the exit status is not relied upon.
func (c *DefaultClient) HasCredentialedAccounts(ctx context.Context) (bool, error) {
	res, err := c.runner.Output(ctx, c.binary, "auth", "list")
	if err != nil {
		var exitErr *shell.ExitError
		if !errors.As(err, &exitErr) {
			return false, err
		}
	}

	return !strings.Contains(res.Stderr, noCredentialedAccounts), nil
}

func (c *DefaultClient) Login(ctx context.Context) error {
	return c.runner.Attached(ctx, c.binary, "auth", "login")
}

func (c *DefaultClient) SetProperty(ctx context.Context, property, value string) error {
	return c.runner.Attached(ctx, c.binary, "config", "set", property, value)
}

func (c *DefaultClient) DescribeImageFamily(ctx context.Context, family ImageFamily) (Image, error) {
	res, err := c.runner.Output(ctx, c.binary,
		"compute", "images", "describe-from-family", family.Family,
		"--project="+family.Project,
	)
	if err != nil {
		return Image{}, err
	}

	return ParseImage(res.Stdout, family)
}

// ListInstances returns the text listing of instances whose name matches the
// filter exactly. An empty listing means there is none: gcloud then reports
// "Listed 0 items." on stderr only.
func (c *DefaultClient) ListInstances(ctx context.Context, filter InstanceFilter) (string, error) {
	args := []string{
		"compute", "instances", "list",
		"--filter", fmt.Sprintf("name~'^%s$'", filter.Name),
	}
	if filter.ProjectID != "" {
		args = append(args, "--project="+filter.ProjectID)
	}

	res, err := c.runner.Output(ctx, c.binary, args...)
	if err != nil {
		return "", err
	}

	return res.Stdout, nil
}

func (c *DefaultClient) CreateInstance(ctx context.Context, config InstanceConfig) error {
	return c.runner.Attached(ctx, c.binary, config.Args()...)
}

func (c *DefaultClient) SSH(ctx context.Context, opts SSHOptions) error {
	return c.runner.Attached(ctx, c.binary, opts.Args()...)
}

// Args returns the gcloud arguments opening the SSH session.
func (o SSHOptions) Args() []string {
	user := o.User
	if user == "" {
		user = DefaultSSHUser
	}

	args := []string{"compute", "ssh", user + "@" + o.Instance}
	if o.Zone != "" {
		args = append(args, "--zone="+o.Zone)
	}
	if o.ProjectID != "" {
		args = append(args, "--project="+o.ProjectID)
	}
	if o.KeyFile != "" {
		args = append(args, "--ssh-key-file="+o.KeyFile)
	}
	return args
}
