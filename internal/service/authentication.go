// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"planetary-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidCredentials email 或密碼錯誤
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingSecret 未設定簽章金鑰
	ErrMissingSecret = errors.New("jwt secret not set")

	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容，subject 即使用者 email
type CustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthenticateUser 根據使用者結構和明文密碼驗證，成功回傳使用者
// 原密碼或寄出的臨時密碼皆可通過
func AuthenticateUser(ctx context.Context, user model.User, password string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, hash := range []string{user.PasswordHash, user.TempPasswordHash} {
		if hash != "" && ComparePassword(hash, password) == nil {
			return &user, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// IssueAccessToken 依據 email 與 TTL 產生 HS256 JWT；ttl <= 0 表示不設過期
func IssueAccessToken(secret []byte, email string, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}

	now := timeNow()
	claims := CustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  email,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func VerifyAccessToken(secret []byte, tokenString string) (*CustomClaims, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
