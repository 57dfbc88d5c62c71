package interfaces

// ILinkSigner optionally binds a public link to its (quoteId, ownerId) pair.
//
// When Enabled is false links are the bare id pair and Verify accepts any
// token, including an empty one.

type ILinkSigner interface {
	Enabled() bool
	Sign(quoteID, ownerID string) (string, error)
	Verify(token, quoteID, ownerID string) error
}
