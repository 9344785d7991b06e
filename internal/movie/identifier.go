// Package movie holds the values passed between the barcode lookup,
// the metadata fetch and the collection formatter.
package movie

import "fmt"

// IdentifierKind tells which variant of an Identifier is populated.
type IdentifierKind int

const (
	// KindNone is the zero Identifier; it never leaves a resolver.
	KindNone IdentifierKind = iota
	// KindExternalID identifies a movie by its IMDb ID.
	KindExternalID
	// KindTitle identifies a movie by free-text title.
	KindTitle
)

// Identifier is the result of resolving a barcode: either an IMDb ID or a
// title, never both.
type Identifier struct {
	kind  IdentifierKind
	value string
}

// ByExternalID creates an Identifier for an IMDb ID such as "tt0133093".
func ByExternalID(imdbID string) Identifier {
	return Identifier{kind: KindExternalID, value: imdbID}
}

// ByTitle creates an Identifier for a free-text title search.
func ByTitle(title string) Identifier {
	return Identifier{kind: KindTitle, value: title}
}

// Kind returns which variant is populated.
func (id Identifier) Kind() IdentifierKind {
	return id.kind
}

// ExternalID returns the IMDb ID, or "" for a title identifier.
func (id Identifier) ExternalID() string {
	if id.kind != KindExternalID {
		return ""
	}
	return id.value
}

// Title returns the title, or "" for an IMDb ID identifier.
func (id Identifier) Title() string {
	if id.kind != KindTitle {
		return ""
	}
	return id.value
}

// IsZero reports whether the identifier carries nothing.
func (id Identifier) IsZero() bool {
	return id.kind == KindNone || id.value == ""
}

func (id Identifier) String() string {
	switch id.kind {
	case KindExternalID:
		return fmt.Sprintf("IMDb ID: %s", id.value)
	case KindTitle:
		return fmt.Sprintf("title: %s", id.value)
	default:
		return "no identifier"
	}
}
