// Package catalog serves the option lists the dashboard's analysis form
// offers: known products, platforms, and languages.
package catalog

// Option is a selectable form entry.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog bundles the three option lists.
type Catalog struct {
	Products  []Option `json:"products"`
	Platforms []Option `json:"platforms"`
	Languages []Option `json:"languages"`
}

// DefaultCatalog returns the option lists loaded at startup.
func DefaultCatalog() Catalog {
	return Catalog{
		Products: []Option{
			{ID: "prod-1", Name: "Smartwatch Series X"},
			{ID: "prod-2", Name: "Quantum Laptop Pro"},
			{ID: "prod-3", Name: "AcousticBliss Headphones"},
			{ID: "prod-4", Name: "Stellar Drone 4K"},
		},
		Platforms: []Option{
			{ID: "plat-1", Name: "Amazon"},
			{ID: "plat-2", Name: "Flipkart"},
			{ID: "plat-3", Name: "Google"},
			{ID: "plat-4", Name: "Other"},
		},
		Languages: []Option{
			{ID: "lang-1", Name: "English"},
			{ID: "lang-2", Name: "Hindi"},
			{ID: "lang-3", Name: "Tamil"},
			{ID: "lang-4", Name: "Kannada"},
		},
	}
}
