package category

// Image is the category picture.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Item is a flat catalog_item row.
type Item struct {
	ID       int
	ParentID *int
	Title    string
	Image    *Image
}

// Category is the public DTO returned by the category API. Root categories
// carry their children in Subcategories.
type Category struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Image         *Image     `json:"image"`
	Subcategories []Category `json:"subcategories"`
}
