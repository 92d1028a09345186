package product

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	cardColumns = `
		SELECT p.id, p.category_id, p.title, p.description, p.price::float8, p.count, p.date,
		       p.rating::float8, p.free_delivery, p.sold,
		       (SELECT COUNT(*) FROM review r WHERE r.product_id = p.id) AS reviews
		FROM product p`
	listPopularQuery = cardColumns + `
		ORDER BY p.rating DESC, p.sold DESC, p.id
		LIMIT $1`
	listLimitedQuery = cardColumns + `
		WHERE p.count = ANY($1::int[])
		ORDER BY p.id
		LIMIT $2`
	listImagesQuery = `SELECT product_id, src, alt FROM product_image WHERE product_id = ANY($1::int[]) ORDER BY id`
	listTagsQuery   = `
		SELECT pt.product_id, t.id, t.name
		FROM product_tag pt
		JOIN tag t ON t.id = pt.tag_id
		WHERE pt.product_id = ANY($1::int[])
		ORDER BY t.id`
	getProductQuery         = cardColumns + ` WHERE p.id = $1`
	listSpecificationsQuery = `SELECT name, value FROM product_specification WHERE product_id = $1 ORDER BY id`
	listReviewsQuery        = `SELECT COALESCE(author, ''), COALESCE(email, ''), COALESCE(text, ''), rate, date FROM review WHERE product_id = $1 ORDER BY date DESC`
	listAllTagsQuery        = `SELECT id, name FROM tag ORDER BY id`
	countCatalogQuery       = `SELECT COUNT(*) FROM product p`
)

// catalogOrder maps sort keys to ORDER BY expressions.
var catalogOrder = map[string]string{
	SortPrice:   "p.price",
	SortReviews: "reviews",
	SortRating:  "p.rating",
	SortDate:    "p.date",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// catalogWhere renders the filter as a WHERE clause with numbered parameters.
func catalogWhere(f CatalogFilter) (string, []any) {
	conds := make([]string, 0)
	args := make([]any, 0)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Name != "" {
		add("p.title ILIKE $%d", "%"+likeEscaper.Replace(f.Name)+"%")
	}
	if f.MinPrice != nil {
		add("p.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price <= $%d", *f.MaxPrice)
	}
	if f.Category > 0 {
		add("p.category_id = $%d", f.Category)
	}
	if f.FreeDelivery {
		conds = append(conds, "p.free_delivery")
	}
	if f.Available {
		conds = append(conds, "p.count > 0")
	}
	if len(f.Tags) > 0 {
		add("EXISTS (SELECT 1 FROM product_tag pt WHERE pt.product_id = p.id AND pt.tag_id = ANY($%d::int[]))", pq.Array(f.Tags))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Catalog expects a normalized filter.
func (r *PostgresRepository) Catalog(f CatalogFilter) ([]Product, int, error) {
	where, args := catalogWhere(f)

	var total int
	if err := r.db.QueryRow(countCatalogQuery+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count catalog: %w", err)
	}
	if total == 0 {
		return []Product{}, 0, nil
	}

	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	order, ok := catalogOrder[f.Sort]
	if !ok {
		order = catalogOrder[SortPrice]
	}
	q := fmt.Sprintf("%s%s ORDER BY %s %s, p.id LIMIT $%d OFFSET $%d",
		cardColumns, where, order, dir, len(args)+1, len(args)+2)

	rows, err := r.db.Query(q, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list catalog: %w", err)
	}
	items, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("get product %d: %w", id, err)
	}

	out := []Product{p}
	index := map[int]int{p.ID: 0}
	ids := []int{p.ID}
	if err := r.attachImages(out, index, ids); err != nil {
		return Product{}, err
	}
	if err := r.attachTags(out, index, ids); err != nil {
		return Product{}, err
	}
	p = out[0]

	specs, err := r.db.Query(listSpecificationsQuery, id)
	if err != nil {
		return Product{}, fmt.Errorf("list specifications: %w", err)
	}
	defer specs.Close()
	for specs.Next() {
		var sp Specification
		if err := specs.Scan(&sp.Name, &sp.Value); err != nil {
			continue
		}
		p.Specifications = append(p.Specifications, sp)
	}
	if err := specs.Err(); err != nil {
		return Product{}, err
	}

	reviews, err := r.db.Query(listReviewsQuery, id)
	if err != nil {
		return Product{}, fmt.Errorf("list reviews: %w", err)
	}
	defer reviews.Close()
	for reviews.Next() {
		var rv Review
		if err := reviews.Scan(&rv.Author, &rv.Email, &rv.Text, &rv.Rate, &rv.Date); err != nil {
			continue
		}
		p.ReviewList = append(p.ReviewList, rv)
	}
	return p, reviews.Err()
}

func (r *PostgresRepository) ListTags() ([]Tag, error) {
	rows, err := r.db.Query(listAllTagsQuery)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	out := make([]Tag, 0)
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			continue
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPopular(limit int) ([]Product, error) {
	rows, err := r.db.Query(listPopularQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("list popular products: %w", err)
	}
	return r.collect(rows)
}

func (r *PostgresRepository) ListLimited(limit int) ([]Product, error) {
	rows, err := r.db.Query(listLimitedQuery, pq.Array(LimitedStock), limit)
	if err != nil {
		return nil, fmt.Errorf("list limited products: %w", err)
	}
	return r.collect(rows)
}

// collect scans product rows and attaches images and tags with one query each.
func (r *PostgresRepository) collect(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	err := rows.Err()
	rows.Close()
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]int, len(out))
	index := make(map[int]int, len(out))
	for i, p := range out {
		ids[i] = p.ID
		index[p.ID] = i
	}

	if err := r.attachImages(out, index, ids); err != nil {
		return nil, err
	}
	if err := r.attachTags(out, index, ids); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) attachImages(out []Product, index map[int]int, ids []int) error {
	rows, err := r.db.Query(listImagesQuery, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID int
			img       Image
		)
		if err := rows.Scan(&productID, &img.Src, &img.Alt); err != nil {
			continue
		}
		if i, ok := index[productID]; ok {
			out[i].Images = append(out[i].Images, img)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) attachTags(out []Product, index map[int]int, ids []int) error {
	rows, err := r.db.Query(listTagsQuery, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list product tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID int
			tag       Tag
		)
		if err := rows.Scan(&productID, &tag.ID, &tag.Name); err != nil {
			continue
		}
		if i, ok := index[productID]; ok {
			out[i].Tags = append(out[i].Tags, tag)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	if err := scanner.Scan(
		&p.ID,
		&p.CategoryID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.Count,
		&p.Date,
		&p.Rating,
		&p.FreeDelivery,
		&p.Sold,
		&p.Reviews,
	); err != nil {
		return Product{}, err
	}
	return p, nil
}
