package category

import (
	"database/sql"
	"fmt"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every catalog item ordered by id.
func (r *PostgresRepository) List() ([]Item, error) {
	rows, err := r.db.Query(`SELECT id, parent_id, title, image_src, image_alt FROM catalog_item ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var (
			id     int
			parent sql.NullInt64
			title  string
			src    sql.NullString
			alt    sql.NullString
		)
		if err := rows.Scan(&id, &parent, &title, &src, &alt); err != nil {
			continue
		}
		item := Item{ID: id, Title: title}
		if parent.Valid {
			p := int(parent.Int64)
			item.ParentID = &p
		}
		if src.Valid && src.String != "" {
			item.Image = &Image{Src: src.String, Alt: "image"}
			if alt.Valid {
				item.Image.Alt = alt.String
			}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
