package plate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "BJK1234", Canonicalize("bjk 1234"))
	assert.Equal(t, "JWD3000", Canonicalize("  jWd   3000 "))
	assert.Equal(t, "WXY12A", Canonicalize("wxy\t12a"))
	assert.Equal(t, "", Canonicalize("   "))
}

func TestCanonicalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"bjk 1234", "JWD3000", " v 1 a ", ""} {
		once := Canonicalize(raw)
		assert.Equal(t, once, Canonicalize(once))
	}
}

func TestIsValidFormat(t *testing.T) {
	valid := []string{"A1", "JWD3000", "bjk 1234", "WXY1234AB", "abc 9999 xy"}
	for _, v := range valid {
		assert.True(t, IsValidFormat(v), v)
	}

	invalid := []string{"", "1234", "ABCD123", "AB12345", "JWD3000ABC", "JW-3000", "JWD"}
	for _, v := range invalid {
		assert.False(t, IsValidFormat(v), v)
	}
}
