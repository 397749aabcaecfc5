// Package ex03 maps a composite primary key declared on the entity itself,
// with a separate key type mirroring the key fields.
package ex03

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

// NewsKey mirrors the key fields of News. It maps no table.
type NewsKey struct {
	Title    string
	Language string
}

type News struct {
	Title    string `db:"title,primaryKey"`
	Language string `db:"language,primaryKey"`
	Content  string `db:"content"`
}

func (News) TableName() string { return "news_ex03" }

// Key returns the key of n.
func (n News) Key() NewsKey {
	return NewsKey{Title: n.Title, Language: n.Language}
}
