package schema

// CatalogCarMakeTable represents the 'catalog.carmake' table
type CatalogCarMakeTable struct {
	Table    string
	Make     string
	Position string
}

// CatalogCarMake is the schema definition for catalog.carmake
var CatalogCarMake = CatalogCarMakeTable{
	Table:    "catalog.carmake",
	Make:     "make",
	Position: "position",
}

func (t CatalogCarMakeTable) Columns() []string { return []string{t.Make, t.Position} }
