package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"planetary-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var secret = []byte("s")

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	randRead = rand.Read
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "other"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestHashPasswordLong(t *testing.T) {
	t.Cleanup(restoreGlobals)
	long := strings.Repeat("p", 100)
	hash, err := HashPassword(long)
	require.NoError(t, err)
	require.NoError(t, ComparePassword(hash, long))
	// 超過 72 bytes 的差異仍需比對得出
	require.Error(t, ComparePassword(hash, strings.Repeat("p", 99)))
	require.Error(t, ComparePassword(hash, strings.Repeat("p", 72)))
}

func TestGeneratePassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	a, err := GeneratePassword()
	require.NoError(t, err)
	b, err := GeneratePassword()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
	decoded, err := base64.RawURLEncoding.DecodeString(a)
	require.NoError(t, err)
	require.Len(t, decoded, generatedPasswordBytes)

	randRead = func([]byte) (int, error) { return 0, errors.New("rand") }
	_, err = GeneratePassword()
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	hash, _ := HashPassword("pw")
	u := model.User{Email: "a@b.com", PasswordHash: hash}

	got, err := AuthenticateUser(ctx, u, "pw")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", got.Email)

	_, err = AuthenticateUser(ctx, u, "bad")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = AuthenticateUser(ctx, model.User{}, "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// 臨時密碼與原密碼並存
	tmp, _ := HashPassword("tmp")
	u.TempPasswordHash = tmp
	_, err = AuthenticateUser(ctx, u, "pw")
	require.NoError(t, err)
	_, err = AuthenticateUser(ctx, u, "tmp")
	require.NoError(t, err)
	_, err = AuthenticateUser(ctx, u, "bad")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = AuthenticateUser(ctx, model.User{TempPasswordHash: tmp}, "tmp")
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = AuthenticateUser(cancelled, u, "pw")
	require.ErrorIs(t, err, context.Canceled)
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	_, err := IssueAccessToken(nil, "a@b.com", time.Minute)
	require.ErrorIs(t, err, ErrMissingSecret)

	tok, err := IssueAccessToken(secret, "a@b.com", time.Minute)
	require.NoError(t, err)
	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return secret, nil })
	require.NoError(t, err)
	require.Equal(t, "a@b.com", claims.Subject)
	require.Equal(t, "a@b.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)

	tok, err = IssueAccessToken(secret, "a@b.com", 0)
	require.NoError(t, err)
	claims = &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return secret, nil })
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	_, err := VerifyAccessToken(nil, "abc")
	require.ErrorIs(t, err, ErrMissingSecret)

	_, err = VerifyAccessToken(secret, "invalid")
	require.Error(t, err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(secret, tokNone)
	require.Error(t, err)

	other, _ := IssueAccessToken([]byte("other"), "a@b.com", time.Minute)
	_, err = VerifyAccessToken(secret, other)
	require.Error(t, err)

	timeNow = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _ := IssueAccessToken(secret, "a@b.com", time.Minute)
	_, err = VerifyAccessToken(secret, expired)
	require.Error(t, err)
	timeNow = time.Now

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken(secret, "whatever")
	require.Error(t, err)

	parseWithClaims = jwt.ParseWithClaims
	tok, _ := IssueAccessToken(secret, "c@d.com", time.Minute)
	claims, err := VerifyAccessToken(secret, tok)
	require.NoError(t, err)
	require.Equal(t, "c@d.com", claims.Email)
}
