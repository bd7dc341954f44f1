// Package metadata describes the application: its name, version, license and authorship.
package metadata

import (
	_ "embed"
	"runtime"
	"strings"
)

//go:embed LICENSE
var licenseText string

// Version is overridden at build time with -ldflags "-X .../metadata.Version=...".
var Version = "0.1.0"

// License is the license the application is distributed under.
type License struct {
	Name string
	Text string
}

// Developer is the person maintaining the application.
type Developer struct {
	Name  string
	Email string
}

// EmailURL returns the developer's address as a mailto URL.
func (d Developer) EmailURL() string {
	return "mailto:" + d.Email
}

// Metadata is a read-only description of the application.
type Metadata struct {
	Name          string
	Version       string
	CreationYear  int
	RepositoryURL string
	License       License
	Developer     Developer
}

// New returns the metadata of this build.
func New() Metadata {
	version := Version
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return Metadata{
		Name:          "river-dreams",
		Version:       version,
		CreationYear:  2023,
		RepositoryURL: "https://github.com/Veraticus/river-dreams",
		License: License{
			Name: "MIT",
			Text: strings.TrimRight(licenseText, "\n"),
		},
		Developer: Developer{
			Name:  "Veraticus",
			Email: "veraticus@users.noreply.github.com",
		},
	}
}

// OSName returns a display name for the running operating system.
func OSName() string {
	return osDisplayName(runtime.GOOS)
}

func osDisplayName(goos string) string {
	switch goos {
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	case "freebsd":
		return "FreeBSD"
	default:
		return goos
	}
}
