package gcp

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"golang.org/x/exp/slices"
)

func TestInstanceConfig_Args(t *testing.T) {
	cfg := NewInstanceConfig("my-project", "us-central1-a", "vm-1")
	cfg.SetImage("projects/almalinux-cloud/global/images/almalinux-8-v20231010").
		SetServiceAccount("123-compute@developer.gserviceaccount.com")

	want := []string{
		"compute", "instances", "create", "vm-1",
		"--project=my-project",
		"--zone=us-central1-a",
		"--machine-type=e2-medium",
		"--metadata=startup-script=" + DefaultStartupScript,
		"--maintenance-policy=MIGRATE",
		"--provisioning-model=STANDARD",
		"--service-account=123-compute@developer.gserviceaccount.com",
		"--scopes=https://www.googleapis.com/auth/devstorage.read_only,https://www.googleapis.com/auth/logging.write,https://www.googleapis.com/auth/monitoring.write,https://www.googleapis.com/auth/servicecontrol,https://www.googleapis.com/auth/service.management.readonly,https://www.googleapis.com/auth/trace.append",
		"--create-disk=auto-delete=yes,boot=yes,device-name=vm-1,image=projects/almalinux-cloud/global/images/almalinux-8-v20231010,mode=rw,size=20,type=projects/my-project/zones/us-central1-a/diskTypes/pd-balanced",
		"--no-shielded-secure-boot",
		"--shielded-vtpm",
		"--shielded-integrity-monitoring",
		"--labels=goog-ec-src=vm_add-gcloud",
		"--reservation-affinity=any",
	}

	assert.Equal(t, want, cfg.Args())
}

func TestInstanceConfig_Setters(t *testing.T) {
	t.Run("empty values keep defaults", func(t *testing.T) {
		cfg := NewInstanceConfig("p", "z", "vm")
		cfg.SetStartupScript("").SetServiceAccount("").SetImage("")

		assert.Equal(t, DefaultStartupScript, cfg.StartupScript)
		assert.Equal(t, DefaultMachineType, cfg.MachineType)
		assert.Equal(t, "", cfg.ServiceAccount)
		assert.Equal(t, "", cfg.Image)
	})

	t.Run("no service account flag when unset", func(t *testing.T) {
		args := NewInstanceConfig("p", "z", "vm").Args()
		assert.False(t, slices.ContainsFunc(args, func(a string) bool {
			return strings.HasPrefix(a, "--service-account")
		}))
	})

	t.Run("custom startup script", func(t *testing.T) {
		cfg := NewInstanceConfig("p", "z", "vm")
		cfg.SetStartupScript("dnf -y install httpd")
		assert.True(t, slices.Contains(cfg.Args(), "--metadata=startup-script=dnf -y install httpd"))
	})
}

func TestMetadata(t *testing.T) {
	tt := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain", value: "echo hi", want: "startup-script=echo hi"},
		{name: "comma", value: "echo a,b", want: "^##^startup-script=echo a,b"},
		{name: "comma and hashes", value: "echo a,b ## c", want: "^@@^startup-script=echo a,b ## c"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, metadata("startup-script", tc.value))
		})
	}
}
