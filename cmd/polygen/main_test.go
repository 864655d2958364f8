package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersion(t *testing.T) {
	info := buildVersion("v1.2.3", "abc123", "2026-01-02", "goreleaser", "clean")
	assert.Equal(t, "v1.2.3", info.GitVersion)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "2026-01-02", info.BuildDate)
	assert.Equal(t, "goreleaser", info.BuiltBy)
	assert.Equal(t, "clean", info.GitTreeState)
	assert.Equal(t, "polygen", info.Name)
	assert.Contains(t, info.String(), "v1.2.3")
}

func TestBuildVersionKeepsDetectedValues(t *testing.T) {
	detected := buildVersion("", "", "", "", "")
	assert.Equal(t, "polygen", detected.Name)
	assert.NotEmpty(t, detected.GoVersion)
}
