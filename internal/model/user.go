// File: internal/model/user.go
package model

type User struct {
	ID           int    `db:"id" json:"id"`
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password" json:"-"`
	// TempPasswordHash 寄出的臨時密碼，與 PasswordHash 並存
	TempPasswordHash string `db:"temp_password" json:"-"`
}
