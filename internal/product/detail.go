package product

// TagName is the tag shape embedded in the product detail.
type TagName struct {
	Name string `json:"name"`
}

// ReviewView is a review as rendered on the product page.
type ReviewView struct {
	Author string `json:"author"`
	Email  string `json:"email"`
	Text   string `json:"text"`
	Rate   int    `json:"rate"`
	Date   string `json:"date"`
}

// Detail is the full product returned by GET /api/product/:id.
type Detail struct {
	ID              int             `json:"id"`
	Price           float64         `json:"price"`
	Count           int             `json:"count"`
	Date            string          `json:"date"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	FullDescription string          `json:"fullDescription"`
	FreeDelivery    bool            `json:"freeDelivery"`
	Rating          float64         `json:"rating"`
	Specifications  []Specification `json:"specifications"`
	Tags            []TagName       `json:"tags"`
	Images          []Image         `json:"images"`
	Reviews         []ReviewView    `json:"reviews"`
}

const reviewDateLayout = "2006-01-02 15:04"

// NewDetail converts a product loaded with its specifications and reviews.
func NewDetail(p Product) Detail {
	d := Detail{
		ID:              p.ID,
		Price:           p.Price,
		Count:           p.Count,
		Date:            p.Date.Format(CardDateLayout),
		Title:           p.Title,
		Description:     shortDescription(p.Description),
		FullDescription: p.Description,
		FreeDelivery:    p.FreeDelivery,
		Rating:          p.Rating,
		Specifications:  make([]Specification, 0, len(p.Specifications)),
		Tags:            make([]TagName, 0, len(p.Tags)),
		Images:          make([]Image, 0, len(p.Images)),
		Reviews:         make([]ReviewView, 0, len(p.ReviewList)),
	}
	d.Specifications = append(d.Specifications, p.Specifications...)
	d.Images = append(d.Images, p.Images...)
	for _, t := range p.Tags {
		d.Tags = append(d.Tags, TagName{Name: t.Name})
	}
	for _, r := range p.ReviewList {
		d.Reviews = append(d.Reviews, ReviewView{
			Author: r.Author,
			Email:  r.Email,
			Text:   r.Text,
			Rate:   r.Rate,
			Date:   r.Date.Format(reviewDateLayout),
		})
	}
	return d
}
