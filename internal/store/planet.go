package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"planetary-api/internal/database"
	"planetary-api/internal/model"
)

const planetColumns = `id, name, type, home_star, mass, radius, distance`

type scanner interface {
	Scan(dest ...any) error
}

func scanPlanet(s scanner) (*model.Planet, error) {
	p := &model.Planet{}
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.HomeStar,
		&p.Mass,
		&p.Radius,
		&p.Distance,
	); err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePlanet 新增行星；名稱重複時回傳 ErrConflict
func CreatePlanet(ctx context.Context, db database.DB, p *model.Planet) (*model.Planet, error) {
	row := db.QueryRowContext(ctx,
		db.Rebind(`INSERT INTO planets (name, type, home_star, mass, radius, distance)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`),
		p.Name,
		p.Type,
		p.HomeStar,
		p.Mass,
		p.Radius,
		p.Distance,
	)
	if err := row.Scan(&p.ID); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("CreatePlanet: %w", ErrConflict)
		}
		return nil, fmt.Errorf("CreatePlanet: %w", err)
	}
	return p, nil
}

// ListPlanets 依 id 順序回傳所有行星
func ListPlanets(ctx context.Context, db database.DB) ([]model.Planet, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+planetColumns+` FROM planets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListPlanets: %w", err)
	}
	defer rows.Close()

	planets := make([]model.Planet, 0)
	for rows.Next() {
		p, err := scanPlanet(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPlanets: %w", err)
		}
		planets = append(planets, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPlanets: %w", err)
	}
	return planets, nil
}

func GetPlanetByID(ctx context.Context, db database.DB, planetID int) (*model.Planet, error) {
	row := db.QueryRowContext(ctx,
		db.Rebind(`SELECT `+planetColumns+` FROM planets WHERE id = ?`),
		planetID,
	)
	p, err := scanPlanet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetPlanetByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetPlanetByID: %w", err)
	}
	return p, nil
}
