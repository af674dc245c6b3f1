package gcp

import (
	"context"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/calyptia/getmein/shell"
)

func TestDefaultClient_DescribeImageFamily(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		runner := &shell.RunnerMock{
			OutputFunc: func(ctx context.Context, name string, args ...string) (shell.Result, error) {
				return shell.Result{Stdout: describeAlma8}, nil
			},
		}

		img, err := New(runner, "").DescribeImageFamily(ctx, Images["alma8"])
		assert.NoError(t, err)
		assert.Equal(t, "almalinux-8-v20231010", img.Name)

		calls := runner.OutputCalls()
		assert.Equal(t, 1, len(calls))
		assert.Equal(t, "gcloud", calls[0].Name)
		assert.Equal(t, []string{"compute", "images", "describe-from-family", "almalinux-8", "--project=almalinux-cloud"}, calls[0].Args)
	})

	t.Run("gcloud failure is returned as is", func(t *testing.T) {
		exitErr := &shell.ExitError{Name: "gcloud", Code: 1}
		runner := &shell.RunnerMock{
			OutputFunc: func(ctx context.Context, name string, args ...string) (shell.Result, error) {
				return shell.Result{}, exitErr
			},
		}

		_, err := New(runner, "").DescribeImageFamily(ctx, Images["centos7"])
		assert.IsError(t, err, error(exitErr))
	})
}

func TestDefaultClient_ListInstances(t *testing.T) {
	runner := &shell.RunnerMock{
		OutputFunc: func(ctx context.Context, name string, args ...string) (shell.Result, error) {
			return shell.Result{Stderr: "Listed 0 items.\n"}, nil
		},
	}

	out, err := New(runner, "/opt/google-cloud-sdk/bin/gcloud").ListInstances(context.Background(), InstanceFilter{Name: "vm-1", ProjectID: "my-project"})
	assert.NoError(t, err)
	assert.Equal(t, "", out)

	calls := runner.OutputCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, "/opt/google-cloud-sdk/bin/gcloud", calls[0].Name)
	assert.Equal(t, []string{"compute", "instances", "list", "--filter", "name~'^vm-1$'", "--project=my-project"}, calls[0].Args)
}

func TestDefaultClient_HasCredentialedAccounts(t *testing.T) {
	tt := []struct {
		name    string
		res     shell.Result
		err     error
		want    bool
		wantErr bool
	}{
		{
			name: "logged in",
			res:  shell.Result{Stdout: "Credentialed Accounts\nACTIVE  ACCOUNT\n*       me@example.com\n"},
			want: true,
		},
		{
			name: "no accounts",
			res:  shell.Result{Stderr: "No credentialed accounts.\n\nTo login, run:\n  $ gcloud auth login `ACCOUNT`\n"},
			want: false,
		},
		{
			name: "non zero exit still inspects stderr",
			res:  shell.Result{Stderr: "No credentialed accounts.\n"},
			err:  &shell.ExitError{Name: "gcloud", Code: 1},
			want: false,
		},
		{
			name:    "could not run",
			err:     errors.New("exec: \"gcloud\": executable file not found in $PATH"),
			wantErr: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			runner := &shell.RunnerMock{
				OutputFunc: func(ctx context.Context, name string, args ...string) (shell.Result, error) {
					return tc.res, tc.err
				},
			}

			got, err := New(runner, "").HasCredentialedAccounts(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefaultClient_Version(t *testing.T) {
	runner := &shell.RunnerMock{
		OutputFunc: func(ctx context.Context, name string, args ...string) (shell.Result, error) {
			return shell.Result{Stdout: "Google Cloud SDK 455.0.0\nalpha 2023.11.10\nbq 2.0.98\ncore 2023.11.10\n"}, nil
		},
	}

	v, err := New(runner, "").Version(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "455.0.0", v.String())
}

func TestParseSDKVersion(t *testing.T) {
	_, err := ParseSDKVersion("bq 2.0.98\n")
	assert.IsError(t, err, ErrSDKVersionNotFound)

	_, err = ParseSDKVersion("Google Cloud SDK not-a-version\n")
	assert.Error(t, err)
}

func TestDefaultClient_Attached(t *testing.T) {
	ctx := context.Background()
	runner := &shell.RunnerMock{
		AttachedFunc: func(ctx context.Context, name string, args ...string) error {
			return nil
		},
	}
	c := New(runner, "")

	assert.NoError(t, c.Login(ctx))
	assert.NoError(t, c.SetProperty(ctx, "compute/zone", "europe-west1-b"))
	assert.NoError(t, c.SSH(ctx, SSHOptions{Instance: "vm-1", Zone: "europe-west1-b", ProjectID: "p", KeyFile: "/home/me/.ssh/id_gce"}))

	cfg := NewInstanceConfig("p", "europe-west1-b", "vm-1")
	assert.NoError(t, c.CreateInstance(ctx, cfg))

	calls := runner.AttachedCalls()
	assert.Equal(t, 4, len(calls))
	assert.Equal(t, []string{"auth", "login"}, calls[0].Args)
	assert.Equal(t, []string{"config", "set", "compute/zone", "europe-west1-b"}, calls[1].Args)
	assert.Equal(t, []string{"compute", "ssh", "root@vm-1", "--zone=europe-west1-b", "--project=p", "--ssh-key-file=/home/me/.ssh/id_gce"}, calls[2].Args)
	assert.Equal(t, cfg.Args(), calls[3].Args)
}

func TestSSHOptions_Args(t *testing.T) {
	assert.Equal(t, []string{"compute", "ssh", "root@vm-1"}, SSHOptions{Instance: "vm-1"}.Args())
	assert.Equal(t, []string{"compute", "ssh", "centos@vm-1"}, SSHOptions{Instance: "vm-1", User: "centos"}.Args())
}
