// Package provider defines the provider-neutral shapes returned by external
// recipe catalogs.
package provider

// CatalogRecipe is a recipe as described by an external catalog.
type CatalogRecipe struct {
	ExternalID   string
	Title        string
	Category     string
	Area         string
	Instructions string
	ImageURL     *string
	Ingredients  []CatalogIngredient
}

// CatalogIngredient is one (name, measure) pair of a catalog recipe.
type CatalogIngredient struct {
	Name    string
	Measure string
}
