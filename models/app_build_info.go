// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfoUnknown stands in for build metadata the linker did not stamp.
const BuildInfoUnknown = "N/A"

// AppBuildInfo is the build metadata injected into the server binary with
// -ldflags. It is printed at startup and served by the version endpoint.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"buildDate"`
	Commit  string `json:"buildCommit"`
}

// NewAppBuildInfo replaces every empty value with [BuildInfoUnknown].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// Stamped reports whether the linker provided a version.
func (a AppBuildInfo) Stamped() bool {
	return a.Version != "" && a.Version != BuildInfoUnknown
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version=%s date=%s commit=%s", a.Version, a.Date, a.Commit)
}

func orUnknown(s string) string {
	if s == "" {
		return BuildInfoUnknown
	}
	return s
}
