package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "getmein"

// Env holds the settings read from GETMEIN_* environment variables.
// They seed the defaults of the matching command line flags.
type Env struct {
	Config         string        `envconfig:"CONFIG"`
	Zone           string        `envconfig:"ZONE"`
	ProjectID      string        `envconfig:"PROJECT_ID"`
	ServiceAccount string        `envconfig:"SERVICE_ACCOUNT"`
	Gcloud         string        `envconfig:"GCLOUD" default:"gcloud"`
	SSHWait        time.Duration `envconfig:"SSH_WAIT" default:"60s"`
	Debug          bool          `envconfig:"DEBUG"`
}

func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("could not process environment: %w", err)
	}

	if env.Config == "" {
		path, err := DefaultPath()
		if err != nil {
			return Env{}, err
		}
		env.Config = path
	}

	return env, nil
}
