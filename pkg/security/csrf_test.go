package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestCSRFTokenRoundTrip(t *testing.T) {
	token, err := GenerateCSRFToken(testSecret)
	require.NoError(t, err)
	assert.True(t, ValidateCSRFToken(testSecret, token))
}

func TestCSRFTokensAreDistinct(t *testing.T) {
	a, err := GenerateCSRFToken(testSecret)
	require.NoError(t, err)
	b, err := GenerateCSRFToken(testSecret)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCSRFTokenWrongSecret(t *testing.T) {
	token, err := GenerateCSRFToken(testSecret)
	require.NoError(t, err)
	assert.False(t, ValidateCSRFToken("another-secret-another-secret-32", token))
}

func TestCSRFTokenMalformed(t *testing.T) {
	cases := []string{
		"",
		"no-dot",
		"one.two.three",
		"zz.zz",
		"abcd.1234",
	}
	for _, token := range cases {
		assert.False(t, ValidateCSRFToken(testSecret, token), "token %q", token)
	}
}

func TestCSRFTokenTamperedMAC(t *testing.T) {
	token, err := GenerateCSRFToken(testSecret)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 2)

	flipped := []byte(parts[1])
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}
	assert.False(t, ValidateCSRFToken(testSecret, parts[0]+"."+string(flipped)))
}
