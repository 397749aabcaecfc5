package testdata

// NewsKey mirrors the key fields of a composite-key entity; it is not a table.
type NewsKey struct {
	Title    string `db:"title"`
	Language string `db:"language"`
}
