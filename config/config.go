package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/calyptia/getmein/exitcode"
	"github.com/calyptia/getmein/gcp"
	"github.com/calyptia/getmein/shell"
)

// Config is the state shared by every command of a single invocation.
// Zone, ProjectID and ServiceAccount hold the values given on the command
// line or through the environment; the config file fills in the rest on
// Resolve.
type Config struct {
	Path           string
	Zone           string
	ProjectID      string
	ServiceAccount string
	Debug          bool
	GcloudBinary   string
	SSHWait        time.Duration

	Logger *logrus.Entry
	Runner shell.Runner
	GCP    gcp.Client
}

// Settings is the resolved configuration an operation runs with.
type Settings struct {
	Zone           string
	ProjectID      string
	ServiceAccount string
}

// merge fills the empty fields of s from other.
func (s Settings) merge(other Settings) Settings {
	if s.Zone == "" {
		s.Zone = other.Zone
	}
	if s.ProjectID == "" {
		s.ProjectID = other.ProjectID
	}
	if s.ServiceAccount == "" {
		s.ServiceAccount = other.ServiceAccount
	}
	return s
}

// Resolve merges the explicit values with the config file. Explicit values
// win. The file may be unreadable or incomplete when zone and project are
// both given explicitly; otherwise any problem with it is fatal.
func (c *Config) Resolve() (Settings, error) {
	s := c.explicit()

	file, err := LoadFile(c.Path)
	if err != nil {
		if s.Zone != "" && s.ProjectID != "" {
			c.debugf("ignoring config file: %v", err)
			return s, nil
		}
		return Settings{}, exitcode.Fatal(fmt.Errorf("there is something wrong with the config file %s: %w", c.Path, err))
	}

	s = s.merge(file)
	if s.Zone == "" || s.ProjectID == "" {
		return s, exitcode.Fatal(fmt.Errorf("%w: please use --zone, --project-id or modify the config file at %s", ErrIncomplete, c.Path))
	}

	return s, nil
}

// Lookup merges the explicit values with whatever the config file provides,
// without requiring anything to be set.
func (c *Config) Lookup() Settings {
	s := c.explicit()

	file, err := LoadFile(c.Path)
	if err != nil {
		c.debugf("ignoring config file: %v", err)
		return s
	}

	return s.merge(file)
}

func (c *Config) explicit() Settings {
	return Settings{
		Zone:           c.Zone,
		ProjectID:      c.ProjectID,
		ServiceAccount: c.ServiceAccount,
	}
}

func (c *Config) debugf(format string, args ...any) {
	if c.Logger == nil {
		return
	}
	c.Logger.Debugf(format, args...)
}
