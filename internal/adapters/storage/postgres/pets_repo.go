package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-board/internal/domain/pets"
)

// PetsRepo persiste registros en la tabla pets. Los campos lista van como
// jsonb para conservar orden y duplicados tal cual se ingresaron.
type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	diet, likes, dislikes, err := listColumns(p)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_user_id,
			name, owner_name, species, age, house_trained,
			diet, image_url, likes, dislikes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.OwnerName,
		p.Species,
		p.Age,
		p.HouseTrained,
		diet,
		p.ImageURL,
		likes,
		dislikes,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	diet, likes, dislikes, err := listColumns(p)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			owner_user_id = $2,
			name = $3,
			owner_name = $4,
			species = $5,
			age = $6,
			house_trained = $7,
			diet = $8,
			image_url = $9,
			likes = $10,
			dislikes = $11,
			updated_at = $12
		WHERE id = $1
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.OwnerName,
		p.Species,
		p.Age,
		p.HouseTrained,
		diet,
		p.ImageURL,
		likes,
		dislikes,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, selectPets+` WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, selectPets+` ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

const selectPets = `
	SELECT
		id, owner_user_id,
		name, owner_name, species, age, house_trained,
		diet, image_url, likes, dislikes,
		created_at, updated_at
	FROM pets`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var diet, likes, dislikes []byte

	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.OwnerName,
		&p.Species,
		&p.Age,
		&p.HouseTrained,
		&diet,
		&p.ImageURL,
		&likes,
		&dislikes,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	var err error
	if p.Diet, err = listFromJSON(diet); err != nil {
		return pets.Pet{}, err
	}
	if p.Likes, err = listFromJSON(likes); err != nil {
		return pets.Pet{}, err
	}
	if p.Dislikes, err = listFromJSON(dislikes); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func listColumns(p pets.Pet) (diet, likes, dislikes []byte, err error) {
	if diet, err = listToJSON(p.Diet); err != nil {
		return nil, nil, nil, err
	}
	if likes, err = listToJSON(p.Likes); err != nil {
		return nil, nil, nil, err
	}
	if dislikes, err = listToJSON(p.Dislikes); err != nil {
		return nil, nil, nil, err
	}
	return diet, likes, dislikes, nil
}

func listToJSON(tokens []string) ([]byte, error) {
	if tokens == nil {
		tokens = []string{}
	}
	b, err := json.Marshal(tokens)
	if err != nil {
		return nil, fmt.Errorf("marshal list field: %w", err)
	}
	return b, nil
}

func listFromJSON(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal list field: %w", err)
	}
	return out, nil
}
