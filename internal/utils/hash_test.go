// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionToken(t *testing.T) {
	raw, hashed, err := NewSessionToken()
	require.NoError(t, err)

	assert.NotEmpty(t, raw)
	assert.NotContains(t, raw, "=")
	assert.Equal(t, HashToken(raw), hashed)
	assert.NotEqual(t, raw, hashed)
}

func TestNewSessionToken_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		raw, _, err := NewSessionToken()
		require.NoError(t, err)
		_, dup := seen[raw]
		require.False(t, dup, "duplicate token generated")
		seen[raw] = struct{}{}
	}
}

func TestHashToken(t *testing.T) {
	sum := sha256.Sum256([]byte("token"))

	assert.Equal(t, hex.EncodeToString(sum[:]), HashToken("token"))
	assert.Equal(t, HashToken("token"), HashToken("token"))
	assert.NotEqual(t, HashToken("token"), HashToken("token2"))
}

func TestNewShareSlug(t *testing.T) {
	slug, err := NewShareSlug()
	require.NoError(t, err)

	assert.Len(t, slug, ShareSlugLength)
	for _, r := range slug {
		assert.True(t, strings.ContainsRune(slugAlphabet, r), "unexpected rune %q", r)
	}
}

func TestNewShareSlug_Unique(t *testing.T) {
	a, err := NewShareSlug()
	require.NoError(t, err)
	b, err := NewShareSlug()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
