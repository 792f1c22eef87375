package domain

import "time"

// GalleryItem is a media record for the public gallery. Only metadata and the
// hosted image URL are stored; binary upload handling lives outside this service.
type GalleryItem struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Category  string    `json:"category" bson:"category"`
	ImageURL  string    `json:"image_url" bson:"image_url"`
	Caption   string    `json:"caption,omitempty" bson:"caption,omitempty"`
	SortOrder int       `json:"sort_order" bson:"sort_order"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
