package store

import (
	"context"
	"errors"

	"planetary-api/internal/database"
	"planetary-api/internal/model"
)

// SeedPlanets 預設的行星資料
var SeedPlanets = []model.Planet{
	{Name: "Mercury", Type: "Class D", HomeStar: "Sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6},
	{Name: "Venus", Type: "Class K", HomeStar: "Sol", Mass: 4.867e24, Radius: 3760, Distance: 67.24e6},
	{Name: "Earth", Type: "Class M", HomeStar: "Sol", Mass: 5.972e24, Radius: 3959, Distance: 92.96e6},
}

// SeedUserPassword 預設測試帳號的明文密碼，寫入前由呼叫端雜湊
const SeedUserPassword = "p@assword"

// SeedUser 預設測試帳號 (PasswordHash 由呼叫端填入)
var SeedUser = model.User{
	FirstName: "William",
	LastName:  "Herschel",
	Email:     "test@user.com",
}

// Seed 寫入預設資料並回傳實際新增的筆數，已存在的資料會略過
func Seed(ctx context.Context, db database.DB, user model.User) (int, error) {
	inserted := 0
	for _, p := range SeedPlanets {
		p := p
		if _, err := CreatePlanet(ctx, db, &p); err != nil {
			if errors.Is(err, ErrConflict) {
				continue
			}
			return inserted, err
		}
		inserted++
	}

	if _, err := CreateUser(ctx, db, &user); err != nil {
		if errors.Is(err, ErrConflict) {
			return inserted, nil
		}
		return inserted, err
	}
	return inserted + 1, nil
}
