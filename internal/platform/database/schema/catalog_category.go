package schema

// CatalogCategoryTable represents the 'catalog.category' table
type CatalogCategoryTable struct {
	Table    string
	ID       string
	Name     string
	Position string
}

// CatalogCategory is the schema definition for catalog.category
var CatalogCategory = CatalogCategoryTable{
	Table:    "catalog.category",
	ID:       "id",
	Name:     "name",
	Position: "position",
}

func (t CatalogCategoryTable) Columns() []string { return []string{t.ID, t.Name, t.Position} }
