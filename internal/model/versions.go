package model

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/buger/jsonparser"
)

const (
	ManifestKeyCLI = "cli"
	ManifestKeyStd = "std"
)

// DefaultManifest is the versions manifest compiled into the binary. It is used unless a versions file is configured.
//
//go:embed versions.json
var DefaultManifest []byte

// VersionList is the ordered set of recognized versions. The first entry is the latest one.
type VersionList []string

// Contains reports whether v is a recognized version. Versions are compared by exact string equality.
func (l VersionList) Contains(v string) bool {
	return slices.Contains(l, v)
}

// Latest returns the first entry of the list.
func (l VersionList) Latest() (string, error) {
	if len(l) == 0 {
		return "", ErrNoVersions
	}
	return l[0], nil
}

// Manifest holds the version lists the site is built from.
type Manifest struct {
	CLI VersionList `json:"cli"`
	Std VersionList `json:"std"`
}

// ParseManifest reads a versions manifest of the form {"cli": [...], "std": [...]}.
// Both keys are required and must be arrays of strings.
func ParseManifest(raw []byte) (Manifest, error) {
	cli, err := parseVersionList(raw, ManifestKeyCLI)
	if err != nil {
		return Manifest{}, err
	}
	std, err := parseVersionList(raw, ManifestKeyStd)
	if err != nil {
		return Manifest{}, err
	}
	return Manifest{CLI: cli, Std: std}, nil
}

func parseVersionList(raw []byte, key string) (VersionList, error) {
	value, dataType, _, err := jsonparser.Get(raw, key)
	if dataType == jsonparser.NotExist {
		return nil, fmt.Errorf("%w: key '%s' not found", ErrInvalidManifest, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if dataType != jsonparser.Array {
		return nil, fmt.Errorf("%w: '%s' must be an array, got %v", ErrInvalidManifest, key, dataType)
	}

	vl := VersionList{}
	var itemErr error
	_, err = jsonparser.ArrayEach(value, func(v []byte, dt jsonparser.ValueType, _ int, _ error) {
		if itemErr != nil {
			return
		}
		if dt != jsonparser.String {
			itemErr = fmt.Errorf("%w: '%s' contains a non-string value %s", ErrInvalidManifest, key, string(v))
			return
		}
		s, err := jsonparser.ParseString(v)
		if err != nil {
			itemErr = fmt.Errorf("%w: %v", ErrInvalidManifest, err)
			return
		}
		vl = append(vl, s)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if itemErr != nil {
		return nil, itemErr
	}
	return vl, nil
}
