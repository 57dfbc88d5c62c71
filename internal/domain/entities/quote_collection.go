package entities

// QuoteCollection is the owner-scoped list of quotes as it is persisted:
// one record per owner, most recent first.
type QuoteCollection struct {
	OwnerID string
	Quotes  []Quote
	// Exists is false when the owner has never written a collection. That
	// is different from an existing but empty list.
	Exists bool
}

// Find returns the quote with the given id and its position, or -1.
func (c QuoteCollection) Find(quoteID string) (Quote, int) {
	for i, q := range c.Quotes {
		if q.ID == quoteID {
			return q, i
		}
	}
	return Quote{}, -1
}

// Upsert replaces the quote with the same id in place, or prepends q.
// It reports whether q was new.
func (c *QuoteCollection) Upsert(q Quote) bool {
	if _, i := c.Find(q.ID); i >= 0 {
		c.Quotes[i] = q
		return false
	}
	c.Quotes = append([]Quote{q}, c.Quotes...)
	return true
}

// Remove drops the quote with the given id and reports whether it existed.
func (c *QuoteCollection) Remove(quoteID string) bool {
	_, i := c.Find(quoteID)
	if i < 0 {
		return false
	}
	c.Quotes = append(c.Quotes[:i], c.Quotes[i+1:]...)
	return true
}
