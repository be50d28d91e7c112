package schema

// CatalogProductVariantTable represents the 'catalog.productvariant' table
type CatalogProductVariantTable struct {
	Table     string
	ProductID string
	Origin    string
	SKU       string
	Note      string
	Position  string
}

// CatalogProductVariant is the schema definition for catalog.productvariant
var CatalogProductVariant = CatalogProductVariantTable{
	Table:     "catalog.productvariant",
	ProductID: "productid",
	Origin:    "origin",
	SKU:       "sku",
	Note:      "note",
	Position:  "position",
}

func (t CatalogProductVariantTable) Columns() []string {
	return []string{t.ProductID, t.Origin, t.SKU, t.Note, t.Position}
}
