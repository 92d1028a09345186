package product

import "time"

// Image is a product picture.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Tag labels a product.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog row with its images, tags and review count attached.
type Product struct {
	ID           int
	CategoryID   int
	Title        string
	Description  string
	Price        float64
	Count        int
	Date         time.Time
	Rating       float64
	FreeDelivery bool
	Sold         int
	Reviews      int
	Tags         []Tag
	Images       []Image

	// filled for the detail view only
	Specifications []Specification
	ReviewList     []Review
}

// Specification is a name/value pair such as "Weight: 1.2 kg".
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Review is a customer review shown on the product page.
type Review struct {
	Author string    `json:"author"`
	Email  string    `json:"email"`
	Text   string    `json:"text"`
	Rate   int       `json:"rate"`
	Date   time.Time `json:"-"`
}

// Card is the product summary returned by the landing endpoints.
// JSON tags follow the camelCase convention used by the storefront frontend.
type Card struct {
	ID              int     `json:"id"`
	Category        int     `json:"category"`
	Price           float64 `json:"price"`
	Count           int     `json:"count"`
	Date            string  `json:"date"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	FullDescription string  `json:"fullDescription"`
	FreeDelivery    bool    `json:"freeDelivery"`
	Rating          float64 `json:"rating"`
	Tags            []Tag   `json:"tags"`
	Images          []Image `json:"images"`
	Reviews         int     `json:"reviews"`
}

const (
	// CardDateLayout mirrors the JavaScript Date.toString() format the
	// frontend parses.
	CardDateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

	shortDescriptionLen = 20
)

// LimitedStock lists the stock counts that qualify a product as limited.
var LimitedStock = []int{1, 2, 3}

// NewCard converts a product into its landing summary.
func NewCard(p Product) Card {
	tags := p.Tags
	if tags == nil {
		tags = []Tag{}
	}
	images := p.Images
	if images == nil {
		images = []Image{}
	}
	return Card{
		ID:              p.ID,
		Category:        p.CategoryID,
		Price:           p.Price,
		Count:           p.Count,
		Date:            p.Date.Format(CardDateLayout),
		Title:           p.Title,
		Description:     shortDescription(p.Description),
		FullDescription: p.Description,
		FreeDelivery:    p.FreeDelivery,
		Rating:          p.Rating,
		Tags:            tags,
		Images:          images,
		Reviews:         p.Reviews,
	}
}

func shortDescription(s string) string {
	r := []rune(s)
	if len(r) <= shortDescriptionLen {
		return s
	}
	return string(r[:shortDescriptionLen]) + "..."
}

func isLimited(count int) bool {
	for _, c := range LimitedStock {
		if count == c {
			return true
		}
	}
	return false
}
