package ex14

// CDKey is the comparable form of a CD: two CDs with equal keys are the
// same row.
type CDKey struct {
	ID          int64
	Title       string
	Price       float32
	Description string
}

func (c *CD) Key() CDKey {
	return CDKey{ID: c.ID, Title: c.Title, Price: c.Price, Description: c.Description}
}

func (c *CD) Equal(other *CD) bool {
	return other != nil && c.Key() == other.Key()
}

// CDKeys returns the set of keys of cds.
func CDKeys(cds []*CD) map[CDKey]struct{} {
	set := make(map[CDKey]struct{}, len(cds))
	for _, c := range cds {
		set[c.Key()] = struct{}{}
	}
	return set
}
