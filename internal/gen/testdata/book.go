package testdata

type Book struct {
	ID          int64   `db:"id,primaryKey"`
	Title       *string `db:"book_title,notNull,immutable"`
	Price       float32 `db:"price"`
	Description string  `db:"description,size:16"`
	NbOfPage    *int    `db:"nb_of_page,notNull"`
	internal    string  // unexported, no tag: skipped
}

func (Book) TableName() string { return "book_ex05" }

type Track struct {
	ID       int64   `db:"id,primaryKey"`
	Title    string  `db:"title"`
	Duration float32 `db:"duration"`
	Wav      []byte  `db:"wav,lazy"`
	Scratch  string  `db:"-"`
}

func (*Track) TableName() string { return "track_ex04" }
