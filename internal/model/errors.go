package model

import "errors"

var (
	ErrNoVersions      = errors.New("version list is empty")
	ErrInvalidManifest = errors.New("invalid versions manifest")
)
