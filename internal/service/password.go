// File: internal/service/password.go
package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	randRead                     = rand.Read
)

// generatedPasswordBytes 產生臨時密碼所用的亂數長度
const generatedPasswordBytes = 12

// prehash 先以 SHA-256 壓成固定 44 bytes，避開 bcrypt 的 72 bytes 上限
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串；密碼長度不限
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), prehash(password))
}

// GeneratePassword 產生一組 URL-safe 的隨機臨時密碼
func GeneratePassword() (string, error) {
	b := make([]byte, generatedPasswordBytes)
	if _, err := randRead(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
