package orm

// TableNamer maps an entity to an explicit table. Catalogue entities use it
// to suffix their table with the example, e.g. "customer_ex07_1", so every
// example shares one database.
type TableNamer interface {
	TableName() string
}

// ResolveTableName is the table of T. A TableName method on T or *T wins
// over the generator's inferred fallback.
func ResolveTableName[T any](fallback string) string {
	var entity T
	if tn, ok := any(&entity).(TableNamer); ok {
		if name := tn.TableName(); name != "" {
			return name
		}
	}
	return fallback
}
