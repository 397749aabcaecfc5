package testdata

import "time"

type PhoneCall struct {
	ID        int
	Number    string    // no db tag: column inferred as "number"
	StartedAt time.Time // no db tag: column inferred as "started_at"
	Secret    string    `db:"-"` // explicitly skipped
	internal  string    // unexported: skipped
}
