package gcp

import "errors"

var (
	ErrUnknownOS          = errors.New("unknown operating system")
	ErrImageNameNotFound  = errors.New("image name not found in gcloud output")
	ErrSDKVersionNotFound = errors.New("google cloud sdk version not found in gcloud output")
)
