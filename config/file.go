package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const (
	Section           = "gcloud"
	KeyProjectID      = "PROJECT_ID"
	KeyServiceAccount = "SERVICE_ACCOUNT"
	KeyZone           = "ZONE"

	defaultFile = "getmein.conf"
)

var (
	// ErrMissingSection is returned when the config file has no [gcloud] section.
	ErrMissingSection = errors.New("missing section")
	// ErrMissingKey is returned when a key of the [gcloud] section is absent.
	ErrMissingKey     = errors.New("missing option")
	// ErrIncomplete is returned when the zone or the project id is unset
	// after merging every source.
	ErrIncomplete     = errors.New("no value for project id and/or zone provided")
)

//go:embed assets/getmein.conf
var template []byte

// DefaultPath returns ~/.config/getmein.conf.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home dir: %w", err)
	}

	return filepath.Join(home, ".config", defaultFile), nil
}

// Seed writes the config template to path unless a file already exists
// there. It reports whether the file was created.
func Seed(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("could not stat config file %q: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("could not create directory %q: %w", dir, err)
	}

	if err := os.WriteFile(path, template, 0o600); err != nil {
		return false, fmt.Errorf("could not store config file %q: %w", path, err)
	}

	return true, nil
}

// LoadFile reads the [gcloud] section of the config file at path.
// Keys are matched case-insensitively; every key must be present but may
// be empty.
func LoadFile(path string) (Settings, error) {
	f, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, path)
	if err != nil {
		return Settings{}, fmt.Errorf("could not read config file: %w", err)
	}

	sec, err := f.GetSection(Section)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: no section %q", ErrMissingSection, Section)
	}

	var s Settings
	for _, field := range []struct {
		key string
		dst *string
	}{
		{KeyProjectID, &s.ProjectID},
		{KeyServiceAccount, &s.ServiceAccount},
		{KeyZone, &s.Zone},
	} {
		if !sec.HasKey(field.key) {
			return Settings{}, fmt.Errorf("%w %q in section %q, the config file might be tainted", ErrMissingKey, field.key, Section)
		}
		*field.dst = sec.Key(field.key).String()
	}

	return s, nil
}
