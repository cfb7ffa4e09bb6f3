package entity

// Category groups posts and is addressed publicly by its slug.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
