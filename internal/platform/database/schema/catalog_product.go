package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Category    string
	Image       string
	Position    string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:       "catalog.product",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Category:    "category",
	Image:       "image",
	Position:    "position",
}

func (t CatalogProductTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.Category, t.Image, t.Position}
}
