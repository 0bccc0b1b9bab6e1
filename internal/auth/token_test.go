package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damayanti/damayanti-be/internal/models"
)

func testClaims() Claims {
	return Claims{UserID: uuid.New(), Email: "a@x.com", FullName: "Ada", Role: models.RoleAdmin}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "damayanti-api", time.Hour)
	want := testClaims()

	token, err := tm.Issue(want)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	got, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVerifyExpired(t *testing.T) {
	tm := NewTokenManager("secret", "damayanti-api", time.Minute)
	issued := time.Now().Add(-time.Hour)
	tm.now = func() time.Time { return issued }
	token, err := tm.Issue(testClaims())
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyForeignSecret(t *testing.T) {
	token, err := NewTokenManager("other", "damayanti-api", time.Hour).Issue(testClaims())
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "damayanti-api", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	token, err := NewTokenManager("secret", "someone-else", time.Hour).Issue(testClaims())
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "damayanti-api", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	tm := NewTokenManager("secret", "damayanti-api", time.Hour)
	for _, raw := range []string{"", "abc", "a.b.c", "Bearer x"} {
		_, err := tm.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, raw)
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{
		"iss": "damayanti-api", "sub": uuid.NewString(), "email": "a@x.com", "role": 1,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "damayanti-api", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewTokenManager("secret", "damayanti-api", time.Hour).Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnusableClaims(t *testing.T) {
	tm := NewTokenManager("secret", "damayanti-api", time.Hour)
	base := func() jwt.MapClaims {
		return jwt.MapClaims{
			"iss": "damayanti-api", "sub": uuid.NewString(), "email": "a@x.com", "role": 0,
			"exp": time.Now().Add(time.Hour).Unix(),
		}
	}
	cases := map[string]func(jwt.MapClaims){
		"bad subject":  func(c jwt.MapClaims) { c["sub"] = "42" },
		"no subject":   func(c jwt.MapClaims) { delete(c, "sub") },
		"no email":     func(c jwt.MapClaims) { delete(c, "email") },
		"unknown role": func(c jwt.MapClaims) { c["role"] = 7 },
		"no expiry":    func(c jwt.MapClaims) { delete(c, "exp") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base()
			mutate(c)
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("secret"))
			require.NoError(t, err)
			_, err = tm.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
