package domain

import "time"

// Collection is a named set of documents.
// Its members' texts form the corpus used for IDF.
type Collection struct {
	// ID is the unique identifier for the collection.
	ID string

	// Name is the human-readable name.
	Name string

	// Description is optional free text.
	Description string

	// DocumentIDs lists member documents. Order is not significant.
	DocumentIDs []string

	// CreatedAt is when the collection was created.
	CreatedAt time.Time

	// UpdatedAt is when the collection or its membership last changed.
	UpdatedAt time.Time
}

// HasDocument reports whether documentID is a member of the collection.
func (c *Collection) HasDocument(documentID string) bool {
	for _, id := range c.DocumentIDs {
		if id == documentID {
			return true
		}
	}
	return false
}

// Size returns the number of member documents.
func (c *Collection) Size() int {
	return len(c.DocumentIDs)
}
