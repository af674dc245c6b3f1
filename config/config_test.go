package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/calyptia/getmein/exitcode"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "getmein.conf")
	err := os.WriteFile(path, []byte(content), 0o600)
	assert.NoError(t, err)
	return path
}

func TestSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "getmein.conf")

	created, err := Seed(path)
	assert.NoError(t, err)
	assert.True(t, created)

	b, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, string(template), string(b))

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	t.Run("existing file is kept", func(t *testing.T) {
		err := os.WriteFile(path, []byte("[gcloud]\nZONE = a\n"), 0o600)
		assert.NoError(t, err)

		created, err := Seed(path)
		assert.NoError(t, err)
		assert.False(t, created)

		b, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "[gcloud]\nZONE = a\n", string(b))
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("template has every key empty", func(t *testing.T) {
		s, err := LoadFile(writeConfig(t, string(template)))
		assert.NoError(t, err)
		assert.Equal(t, Settings{}, s)
	})

	t.Run("values", func(t *testing.T) {
		s, err := LoadFile(writeConfig(t, "[gcloud]\nPROJECT_ID = my-project\nSERVICE_ACCOUNT = sa@my-project.iam.gserviceaccount.com\nZONE = europe-west1-b\n"))
		assert.NoError(t, err)
		assert.Equal(t, Settings{
			Zone:           "europe-west1-b",
			ProjectID:      "my-project",
			ServiceAccount: "sa@my-project.iam.gserviceaccount.com",
		}, s)
	})

	t.Run("keys are case insensitive", func(t *testing.T) {
		s, err := LoadFile(writeConfig(t, "[gcloud]\nproject_id = p\nservice_account =\nzone = z\n"))
		assert.NoError(t, err)
		assert.Equal(t, Settings{Zone: "z", ProjectID: "p"}, s)
	})

	t.Run("missing section", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "[aws]\nZONE = z\n"))
		assert.IsError(t, err, ErrMissingSection)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "[gcloud]\nPROJECT_ID = p\nZONE = z\n"))
		assert.IsError(t, err, ErrMissingKey)
		assert.Contains(t, err.Error(), "SERVICE_ACCOUNT")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.conf"))
		assert.Error(t, err)
	})
}

func TestConfig_Resolve(t *testing.T) {
	full := "[gcloud]\nPROJECT_ID = file-project\nSERVICE_ACCOUNT = file-sa\nZONE = file-zone\n"

	t.Run("file only", func(t *testing.T) {
		cfg := &Config{Path: writeConfig(t, full)}
		s, err := cfg.Resolve()
		assert.NoError(t, err)
		assert.Equal(t, Settings{Zone: "file-zone", ProjectID: "file-project", ServiceAccount: "file-sa"}, s)
	})

	t.Run("explicit values win field by field", func(t *testing.T) {
		cfg := &Config{Path: writeConfig(t, full), Zone: "flag-zone"}
		s, err := cfg.Resolve()
		assert.NoError(t, err)
		assert.Equal(t, Settings{Zone: "flag-zone", ProjectID: "file-project", ServiceAccount: "file-sa"}, s)
	})

	t.Run("broken file is ignored with explicit zone and project", func(t *testing.T) {
		cfg := &Config{Path: writeConfig(t, "[other]\n"), Zone: "z", ProjectID: "p"}
		s, err := cfg.Resolve()
		assert.NoError(t, err)
		assert.Equal(t, Settings{Zone: "z", ProjectID: "p"}, s)
	})

	t.Run("broken file is fatal otherwise", func(t *testing.T) {
		cfg := &Config{Path: writeConfig(t, "[other]\n"), Zone: "z"}
		_, err := cfg.Resolve()
		assert.IsError(t, err, ErrMissingSection)
		assert.Equal(t, exitcode.FatalCode, exitcode.From(err))
	})

	t.Run("empty zone is fatal", func(t *testing.T) {
		cfg := &Config{Path: writeConfig(t, string(template)), ProjectID: "p"}
		_, err := cfg.Resolve()
		assert.IsError(t, err, ErrIncomplete)
		assert.Equal(t, exitcode.FatalCode, exitcode.From(err))
		assert.Contains(t, err.Error(), cfg.Path)
	})
}

func TestConfig_Lookup(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{Path: filepath.Join(t.TempDir(), "nope.conf"), Zone: "z"}
		assert.Equal(t, Settings{Zone: "z"}, cfg.Lookup())
	})

	t.Run("merges file", func(t *testing.T) {
		cfg := &Config{Path: writeConfig(t, "[gcloud]\nPROJECT_ID = p\nSERVICE_ACCOUNT =\nZONE = z\n")}
		assert.Equal(t, Settings{Zone: "z", ProjectID: "p"}, cfg.Lookup())
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("HOME", "/home/me")
		t.Setenv("GETMEIN_CONFIG", "")

		env, err := LoadEnv()
		assert.NoError(t, err)
		assert.Equal(t, "gcloud", env.Gcloud)
		assert.Equal(t, 60*time.Second, env.SSHWait)
		assert.Equal(t, "/home/me/.config/getmein.conf", env.Config)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("GETMEIN_CONFIG", "/etc/getmein.conf")
		t.Setenv("GETMEIN_ZONE", "us-east1-b")
		t.Setenv("GETMEIN_PROJECT_ID", "p")
		t.Setenv("GETMEIN_GCLOUD", "/opt/google-cloud-sdk/bin/gcloud")
		t.Setenv("GETMEIN_SSH_WAIT", "5s")

		env, err := LoadEnv()
		assert.NoError(t, err)
		assert.Equal(t, Env{
			Config:    "/etc/getmein.conf",
			Zone:      "us-east1-b",
			ProjectID: "p",
			Gcloud:    "/opt/google-cloud-sdk/bin/gcloud",
			SSHWait:   5 * time.Second,
		}, env)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("GETMEIN_SSH_WAIT", "soon")
		_, err := LoadEnv()
		assert.Error(t, err)
	})
}
