// SPDX-License-Identifier: MIT

// Package version exposes the build metadata embedded into the binary.
//
// The metadata lives in metadata.yaml next to this file and is compiled in
// with go:embed, so the library and CLI report the same release information
// without touching the filesystem at run time.
package version

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed metadata.yaml
var raw []byte

// Info describes a single release of the module.
type Info struct {
	Name        string `yaml:"name"`         // program name, e.g. "jmatrix"
	Version     string `yaml:"version"`      // semantic version, e.g. "1.0.0"
	ReleaseType string `yaml:"release_type"` // "release", "stable", "beta", ...
	BetaNumber  int    `yaml:"beta_number"`  // nonzero only for beta releases
	Author      string `yaml:"author"`
	License     string `yaml:"license"`
}

// Load decodes the embedded metadata.
func Load() (Info, error) {
	var info Info
	if err := yaml.Unmarshal(raw, &info); err != nil {
		return Info{}, fmt.Errorf("version: decode embedded metadata: %w", err)
	}

	return info, nil
}

// FullVersion renders the version string: the bare semantic version for
// "release" and "stable" builds, otherwise with the release type appended
// ("1.0.0-beta") and, when the beta number is nonzero, its ordinal
// ("1.0.0-beta.2").
func (i Info) FullVersion() string {
	v := i.Version
	if i.ReleaseType != "release" && i.ReleaseType != "stable" {
		v += "-" + i.ReleaseType
		if i.BetaNumber != 0 {
			v += fmt.Sprintf(".%d", i.BetaNumber)
		}
	}

	return v
}

// String renders "<name> <full version>".
func (i Info) String() string {
	return i.Name + " " + i.FullVersion()
}
