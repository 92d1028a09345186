package banner

// Image is the picture of the advertised category.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Banner is the public DTO returned by the banner API. A banner advertises a
// catalog category together with the cheapest price found in it.
type Banner struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Images   []Image  `json:"images"`
	Price    *float64 `json:"price"`
	Category int      `json:"category"`
}

// PromotedPayload is the body accepted by PUT /api/banners/promoted.
type PromotedPayload struct {
	IDs []int `json:"ids"`
}
