package category

// Menu is the category navigation model. SelectedCategory is whatever the
// caller asked to highlight; it need not be one of Categories.
type Menu struct {
	Categories       []string `json:"categories"`
	SelectedCategory *string  `json:"selectedCategory"`
}
