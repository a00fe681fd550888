package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes is the entropy of a session token.
const sessionTokenBytes = 32

// NewSessionToken generates a random URL-safe session token and returns it
// together with its hash. Only the hash is meant to be persisted.
//
// Example usage:
//
//	raw, hashed, err := utils.NewSessionToken()
func NewSessionToken() (raw string, hashed string, err error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("error generating session token: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(buf)
	return raw, HashToken(raw), nil
}

// HashToken computes the hex-encoded SHA-256 digest of a raw token.
//
// Session tokens carry 256 bits of entropy, so an unkeyed hash is enough to
// make a leaked sessions table useless without the raw tokens.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// slugAlphabet is the alphabet of share slugs. Look-alike characters are
// excluded so slugs can be read aloud.
const slugAlphabet = "23456789abcdefghjkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// ShareSlugLength is the length of a collection share slug.
const ShareSlugLength = 12

// NewShareSlug returns a random slug of ShareSlugLength characters.
func NewShareSlug() (string, error) {
	return randomString(ShareSlugLength, slugAlphabet)
}

func randomString(size int, alphabet string) (string, error) {
	// rejection sampling keeps the distribution uniform
	limit := 256 - 256%len(alphabet)

	out := make([]byte, 0, size)
	buf := make([]byte, size*2)
	for len(out) < size {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("error generating random string: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == size {
				break
			}
		}
	}

	return string(out), nil
}
