package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"planetary-api/internal/database"
	"planetary-api/internal/model"
)

// CreateUser 新增使用者；email 重複時回傳 ErrConflict
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRowContext(ctx,
		db.Rebind(`INSERT INTO users (first_name, last_name, email, password)
		 VALUES (?, ?, ?, ?)
		 RETURNING id`),
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("CreateUser: %w", ErrConflict)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRowContext(ctx,
		db.Rebind(`SELECT id, first_name, last_name, email, password, COALESCE(temp_password, '')
		 FROM users WHERE email = ?`),
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.TempPasswordHash,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetUserByEmail: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// SetTempPassword 寫入臨時密碼雜湊；原密碼維持有效
func SetTempPassword(ctx context.Context, db database.DB, userID int, tempHash string) error {
	res, err := db.ExecContext(ctx,
		db.Rebind(`UPDATE users
		 SET temp_password = ?
		 WHERE id = ?`),
		tempHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("SetTempPassword: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("SetTempPassword: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("SetTempPassword: %w", ErrNotFound)
	}
	return nil
}
