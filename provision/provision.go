// Package provision implements the getmein operations: gcloud
// initialisation, instance creation and the SSH helper.
package provision

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/calyptia/getmein/confirm"
	"github.com/calyptia/getmein/exitcode"
	"github.com/calyptia/getmein/gcp"
	"github.com/calyptia/getmein/shell"
)

const (
	DefaultRepoPath = "/etc/yum.repos.d/google-cloud-sdk.repo"
	DefaultWait     = 60 * time.Second
	DefaultTick     = time.Second

	PackageName = "google-cloud-cli"
	// KeyName is the key pair gcloud generates under ~/.ssh.
	KeyName = "google_compute_engine"
)

var (
	ErrInstanceExists   = exitcode.Fatal(errors.New("instance already exists"))
	ErrDeclined         = confirm.ErrDeclined
	ErrGcloudNotFound   = errors.New("gcloud not found in PATH")
	ErrUnsupportedSetup = errors.New("automatic installation is only supported on rpm based hosts")
)

type Provisioner struct {
	Client gcp.Client
	// Runner is used for the host level commands of Init: PATH lookups,
	// rpm and dnf.
	Runner shell.Runner
	Logger *logrus.Entry

	In  io.Reader
	Out io.Writer

	Gcloud   string
	RepoPath string
	// Wait is how long SSH waits before connecting to a fresh instance.
	Wait time.Duration
	Tick time.Duration
	// KeyDir is where gcloud keeps its SSH key pair.
	KeyDir string
}

func New(client gcp.Client, runner shell.Runner, logger *logrus.Entry) *Provisioner {
	keyDir := ".ssh"
	if home, err := os.UserHomeDir(); err == nil {
		keyDir = filepath.Join(home, ".ssh")
	}

	return &Provisioner{
		Client:   client,
		Runner:   runner,
		Logger:   logger,
		In:       os.Stdin,
		Out:      os.Stdout,
		Gcloud:   gcp.DefaultBinary,
		RepoPath: DefaultRepoPath,
		Wait:     DefaultWait,
		Tick:     DefaultTick,
		KeyDir:   keyDir,
	}
}
