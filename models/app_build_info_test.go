package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsUnknown(t *testing.T) {
	info := NewAppBuildInfo("", "2026-04-13", "")

	assert.Equal(t, BuildInfoUnknown, info.Version)
	assert.Equal(t, "2026-04-13", info.Date)
	assert.Equal(t, BuildInfoUnknown, info.Commit)
	assert.False(t, info.Stamped())
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("v1.4.0", "2026-04-13", "abc123")

	assert.True(t, info.Stamped())
	assert.Equal(t, "version=v1.4.0 date=2026-04-13 commit=abc123", info.String())
}
