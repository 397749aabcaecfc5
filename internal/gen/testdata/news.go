package testdata

type NewsID struct {
	Title    string `db:"title"`
	Language string `db:"language"`
}

type News struct {
	ID      NewsID `db:",embedded,primaryKey"`
	Content string `db:"content"`
}

func (News) TableName() string { return "news_ex02" }
