package ex10

import "slices"

// ArtistKey holds the mapped columns of an Artist. Artists with equal keys
// are the same row.
type ArtistKey struct {
	ID        int64
	FirstName string
	LastName  string
}

func (a *Artist) Key() ArtistKey {
	return ArtistKey{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
}

// Equal compares mapped columns. Associations are ignored.
func (a *Artist) Equal(other *Artist) bool {
	return other != nil && a.Key() == other.Key()
}

// CDKey holds the mapped columns of a CD.
type CDKey struct {
	ID          int64
	Title       string
	Price       float32
	Description string
}

func (c *CD) Key() CDKey {
	return CDKey{ID: c.ID, Title: c.Title, Price: c.Price, Description: c.Description}
}

// Equal compares mapped columns. Associations are ignored.
func (c *CD) Equal(other *CD) bool {
	return other != nil && c.Key() == other.Key()
}

// AppearsOn records that a plays on cd, on both sides of the association.
// Only the artist side is written.
func (a *Artist) AppearsOn(cd *CD) {
	a.AppearsOnCDs = append(a.AppearsOnCDs, cd)
	cd.CreatedByArtists = append(cd.CreatedByArtists, a)
}

// HasCD reports whether cds holds a CD equal to cd.
func HasCD(cds []*CD, cd *CD) bool {
	return slices.ContainsFunc(cds, cd.Equal)
}

// HasArtist reports whether artists holds an Artist equal to a.
func HasArtist(artists []*Artist, a *Artist) bool {
	return slices.ContainsFunc(artists, a.Equal)
}
