package service

import "errors"

var (
	// ErrSDKPathNotSet is returned when the local properties are required to
	// name the framework SDK location and do not.
	ErrSDKPathNotSet = errors.New("flutter.sdk not set in local properties")

	ErrLoadBuildInputs = errors.New("error loading build inputs")
	ErrNoDisplay       = errors.New("no notification display given")
)
