package domain

import "time"

// SectionKind distinguishes the content block types a page can carry.
type SectionKind string

const (
	SectionText  SectionKind = "text"
	SectionImage SectionKind = "image"
	SectionQuote SectionKind = "quote"
)

// Section is one ordered content block within a page.
type Section struct {
	Kind     SectionKind `json:"kind" bson:"kind"`
	Heading  string      `json:"heading,omitempty" bson:"heading,omitempty"`
	Body     string      `json:"body,omitempty" bson:"body,omitempty"`
	ImageURL string      `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// Page is an editable content page served on the public site once published.
// Slug is unique and doubles as the public lookup key.
type Page struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Slug      string    `json:"slug" bson:"slug"`
	Title     string    `json:"title" bson:"title"`
	Sections  []Section `json:"sections" bson:"sections"`
	Published bool      `json:"published" bson:"published"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
