package banner

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	listPromotedQuery = `SELECT category_id FROM promoted_category ORDER BY ord, category_id`
	listBannersQuery  = `
		SELECT c.id, c.title, c.image_src, c.image_alt, MIN(p.price)::float8
		FROM catalog_item c
		LEFT JOIN product p ON p.category_id = c.id
		WHERE c.id = ANY($1::int[])
		GROUP BY c.id, c.title, c.image_src, c.image_alt
		ORDER BY c.id`
)

func (r *PostgresRepository) Promoted() ([]int, error) {
	rows, err := r.db.Query(listPromotedQuery)
	if err != nil {
		return nil, fmt.Errorf("list promoted categories: %w", err)
	}
	defer rows.Close()

	out := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			continue
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// SetPromoted replaces the promoted list in a single transaction, keeping the
// given order.
func (r *PostgresRepository) SetPromoted(ids []int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM promoted_category`); err != nil {
		return fmt.Errorf("clear promoted categories: %w", err)
	}
	for i, id := range ids {
		if _, err := tx.Exec(`INSERT INTO promoted_category (category_id, ord) VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, i); err != nil {
			return fmt.Errorf("insert promoted category %d: %w", id, err)
		}
	}
	return tx.Commit()
}

// ListByCategoryIDs returns one banner per existing category in ids. Price is
// the cheapest product of the category, nil when it has no products.
func (r *PostgresRepository) ListByCategoryIDs(ids []int) ([]Banner, error) {
	if len(ids) == 0 {
		return []Banner{}, nil
	}
	rows, err := r.db.Query(listBannersQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	out := make([]Banner, 0)
	for rows.Next() {
		var (
			id    int
			title string
			src   sql.NullString
			alt   sql.NullString
			price sql.NullFloat64
		)
		if err := rows.Scan(&id, &title, &src, &alt, &price); err != nil {
			continue
		}
		b := Banner{ID: id, Title: title, Category: id, Images: []Image{}}
		if src.Valid && src.String != "" {
			img := Image{Src: src.String, Alt: "image"}
			if alt.Valid {
				img.Alt = alt.String
			}
			b.Images = append(b.Images, img)
		}
		if price.Valid {
			v := price.Float64
			b.Price = &v
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
