package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer(now time.Time) *JWTer {
	return &JWTer{
		Secret: []byte("test-secret"),
		Issuer: "adoptlink",
		TTL:    24 * time.Hour,
		Now:    func() time.Time { return now },
	}
}

func TestIssueAndParse(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	j := newTestJWTer(issued)

	tok, err := j.Issue("u-1", "parent")
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.UID)
	assert.Equal(t, "parent", c.Role)
}

// 过期边界：签发后 23h59m 有效，24h01m 拒绝
func TestParseExpiryBoundary(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	j := newTestJWTer(issued)

	tok, err := j.Issue("u-1", "parent")
	require.NoError(t, err)

	j.Now = func() time.Time { return issued.Add(23*time.Hour + 59*time.Minute) }
	_, err = j.Parse(tok)
	assert.NoError(t, err)

	j.Now = func() time.Time { return issued.Add(24*time.Hour + time.Minute) }
	_, err = j.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// 过期与篡改对外是同一个错误
func TestParseFailuresAreUniform(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	j := newTestJWTer(issued)

	tok, err := j.Issue("u-1", "staff")
	require.NoError(t, err)

	other := newTestJWTer(issued)
	other.Secret = []byte("another-secret")
	_, err = other.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = j.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = j.Parse(tok + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	j := newTestJWTer(issued)
	j.Issuer = "someone-else"
	tok, err := j.Issue("u-1", "parent")
	require.NoError(t, err)

	mine := newTestJWTer(issued)
	_, err = mine.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
