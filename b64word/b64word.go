// Package b64word implements the two Base64 shapes spec.md §6 names: the
// plain body codec, and the "=?utf-8?B?...?=" encoded-word form used in
// header values for non-ASCII text.
package b64word

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const wordPrefix = "=?utf-8?B?"
const wordSuffix = "?="

// Encode Base64-encodes a body.
func Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Decode reverses Encode.
func Decode(s string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("decode base64 body: %w", err)
	}
	return string(raw), nil
}

// EncodeWord wraps s in the "=?utf-8?B?<base64>?=" encoded-word form.
func EncodeWord(s string) string {
	return wordPrefix + base64.StdEncoding.EncodeToString([]byte(s)) + wordSuffix
}

// DecodeWord reverses EncodeWord. s must begin with the encoded-word
// prefix.
func DecodeWord(s string) (string, error) {
	if !strings.HasPrefix(s, wordPrefix) || !strings.HasSuffix(s, wordSuffix) {
		return "", fmt.Errorf("not an encoded-word: %q", s)
	}
	payload := strings.TrimSuffix(strings.TrimPrefix(s, wordPrefix), wordSuffix)
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode encoded-word: %w", err)
	}
	return string(raw), nil
}

// HasWordPrefix reports whether s begins with the encoded-word marker,
// without validating the rest of the form.
func HasWordPrefix(s string) bool {
	return strings.HasPrefix(s, wordPrefix)
}

// HasHTMLBodyPrefix reports whether s begins with "PGh0bWw+", the Base64
// encoding of "<html>". decode_body uses this literal-prefix heuristic to
// tell an encoded HTML body apart from a verbatim one; it is preserved
// exactly as spec.md §9 requires, bug and all.
func HasHTMLBodyPrefix(s string) bool {
	return strings.HasPrefix(s, "PGh0bWw+")
}
