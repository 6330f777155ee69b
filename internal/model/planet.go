// File: internal/model/planet.go
package model

type Planet struct {
	ID       int     `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Type     string  `db:"type" json:"type"`
	HomeStar string  `db:"home_star" json:"home_star"`
	Mass     float64 `db:"mass" json:"mass"`
	Radius   float64 `db:"radius" json:"radius"`
	Distance float64 `db:"distance" json:"distance"`
}
