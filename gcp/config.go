package gcp

import (
	"fmt"
	"strconv"
	"strings"

	"code.cloudfoundry.org/bytefmt"
)

const (
	DefaultMachineType         = "e2-medium"
	DefaultDiskSize            = 20 * bytefmt.GIGABYTE
	DefaultDiskType            = "pd-balanced"
	DefaultMaintenancePolicy   = "MIGRATE"
	DefaultProvisioningModel   = "STANDARD"
	DefaultLabels              = "goog-ec-src=vm_add-gcloud"
	DefaultReservationAffinity = "any"

	// DefaultStartupScript enables root login over SSH so that
	// "gcloud compute ssh root@INSTANCE" works right after boot.
	DefaultStartupScript = "sudo sed -i '/^#PermitRootLogin/s/^#//' /etc/ssh/sshd_config\n" +
		"sudo sed -i '/^PermitRootLogin.*/s/.*/PermitRootLogin yes/' /etc/ssh/sshd_config\n" +
		"sudo systemctl restart sshd"
)

// DefaultScopes are the OAuth scopes granted to the instance service account.
var DefaultScopes = []string{
	"https://www.googleapis.com/auth/devstorage.read_only",
	"https://www.googleapis.com/auth/logging.write",
	"https://www.googleapis.com/auth/monitoring.write",
	"https://www.googleapis.com/auth/servicecontrol",
	"https://www.googleapis.com/auth/service.management.readonly",
	"https://www.googleapis.com/auth/trace.append",
}

// metadataDelimiters are tried in order when a metadata value contains a
// comma, see "gcloud topic escaping".
var metadataDelimiters = []string{"##", "@@", "~~", "%%"}

// InstanceConfig is the instance creation policy passed to
// "gcloud compute instances create".
type InstanceConfig struct {
	Name           string
	ProjectID      string
	Zone           string
	MachineType    string
	Image          string
	StartupScript  string
	ServiceAccount string
	Scopes         []string
	DiskSize       uint64
	DiskType       string
}

func NewInstanceConfig(projectID, zone, name string) InstanceConfig {
	return InstanceConfig{
		Name:          name,
		ProjectID:     projectID,
		Zone:          zone,
		MachineType:   DefaultMachineType,
		StartupScript: DefaultStartupScript,
		Scopes:        DefaultScopes,
		DiskSize:      DefaultDiskSize,
		DiskType:      DefaultDiskType,
	}
}

func (c *InstanceConfig) SetImage(image string) *InstanceConfig {
	if image == "" {
		return c
	}
	c.Image = image
	return c
}

func (c *InstanceConfig) SetStartupScript(script string) *InstanceConfig {
	if script == "" {
		return c
	}
	c.StartupScript = script
	return c
}

func (c *InstanceConfig) SetServiceAccount(account string) *InstanceConfig {
	if account == "" {
		return c
	}
	c.ServiceAccount = account
	return c
}

func (c InstanceConfig) diskTypePath() string {
	return fmt.Sprintf("projects/%s/zones/%s/diskTypes/%s", c.ProjectID, c.Zone, c.DiskType)
}

func (c InstanceConfig) createDisk() string {
	opts := []string{
		"auto-delete=yes",
		"boot=yes",
		"device-name=" + c.Name,
		"image=" + c.Image,
		"mode=rw",
		"size=" + strconv.FormatUint(c.DiskSize/bytefmt.GIGABYTE, 10),
		"type=" + c.diskTypePath(),
	}
	return strings.Join(opts, ",")
}

// Args returns the gcloud arguments creating the instance.
func (c InstanceConfig) Args() []string {
	args := []string{
		"compute",
		"instances",
		"create",
		c.Name,
		"--project=" + c.ProjectID,
		"--zone=" + c.Zone,
		"--machine-type=" + c.MachineType,
		"--metadata=" + metadata("startup-script", c.StartupScript),
		"--maintenance-policy=" + DefaultMaintenancePolicy,
		"--provisioning-model=" + DefaultProvisioningModel,
	}
	if c.ServiceAccount != "" {
		args = append(args, "--service-account="+c.ServiceAccount)
	}
	args = append(args,
		"--scopes="+strings.Join(c.Scopes, ","),
		"--create-disk="+c.createDisk(),
		"--no-shielded-secure-boot",
		"--shielded-vtpm",
		"--shielded-integrity-monitoring",
		"--labels="+DefaultLabels,
		"--reservation-affinity="+DefaultReservationAffinity,
	)
	return args
}

// metadata renders a single KEY=VALUE metadata flag value. gcloud splits
// dict flags on commas, so values containing one switch to a custom
// delimiter.
func metadata(key, value string) string {
	kv := key + "=" + value
	if !strings.Contains(value, ",") {
		return kv
	}
	for _, d := range metadataDelimiters {
		if !strings.Contains(kv, d) {
			return "^" + d + "^" + kv
		}
	}
	return kv
}
