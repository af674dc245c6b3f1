package gcp

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// ImageFamily identifies a continuously updated lineage of public images.
type ImageFamily struct {
	Project string
	Family  string
}

// Images maps the short OS identifiers accepted on the command line to the
// marketplace image family they are provisioned from.
var Images = map[string]ImageFamily{
	"centos7": {Project: "centos-cloud", Family: "centos-7"},
	"alma8":   {Project: "almalinux-cloud", Family: "almalinux-8"},
	"rocky8":  {Project: "rocky-linux-cloud", Family: "rocky-linux-8"},
}

// OSKeys returns the supported OS identifiers, sorted.
func OSKeys() []string {
	keys := maps.Keys(Images)
	slices.Sort(keys)
	return keys
}

// LookupImage returns the image family for the given OS identifier.
func LookupImage(osKey string) (ImageFamily, error) {
	f, ok := Images[osKey]
	if !ok {
		return ImageFamily{}, fmt.Errorf("%w %q, supported: %s", ErrUnknownOS, osKey, strings.Join(OSKeys(), ", "))
	}
	return f, nil
}

// Image is the newest member of an image family as described by gcloud.
type Image struct {
	Name              string `yaml:"name"`
	Project           string `yaml:"-"`
	Family            string `yaml:"family"`
	SelfLink          string `yaml:"selfLink"`
	CreationTimestamp string `yaml:"creationTimestamp"`
	Status            string `yaml:"status"`
}

// Path returns the image reference accepted by instance creation.
func (i Image) Path() string {
	return fmt.Sprintf("projects/%s/global/images/%s", i.Project, i.Name)
}

var imageNamePattern = regexp.MustCompile(`(?m)^name: (.+)$`)

// ParseImage extracts the image name from the output of
// "gcloud compute images describe-from-family".
// The top level "name: " line is authoritative; the rest of the output is
// decoded as YAML on a best effort basis for informational fields only.
func ParseImage(output string, family ImageFamily) (Image, error) {
	m := imageNamePattern.FindStringSubmatch(output)
	if m == nil {
		return Image{}, fmt.Errorf("%w for family %s/%s", ErrImageNameNotFound, family.Project, family.Family)
	}

	name := strings.TrimSpace(m[1])
	if name == "" {
		return Image{}, fmt.Errorf("%w for family %s/%s", ErrImageNameNotFound, family.Project, family.Family)
	}

	var img Image
	if err := yaml.Unmarshal([]byte(output), &img); err != nil {
		img = Image{}
	}

	img.Name = name
	img.Project = family.Project
	if img.Family == "" {
		img.Family = family.Family
	}

	return img, nil
}
