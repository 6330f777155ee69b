package store

import "errors"

var (
	// ErrNotFound 查無資料
	ErrNotFound = errors.New("not found")
	// ErrConflict 違反唯一鍵 (email 或 planet name 重複)
	ErrConflict = errors.New("already exists")
)
