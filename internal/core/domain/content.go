package domain

import (
	"errors"
	"time"
)

// Well-known identifiers for the singleton content rows. Upserting against a
// fixed id guarantees exactly one record per table without find-then-branch
// races.
const (
	HomeContentID = "home"
	ContactInfoID = "contact"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")
var ErrVideoNotFound = errors.New("video not found")

// HomeContent is the site-wide landing page copy. Singleton row, admin-mutable.
type HomeContent struct {
	ID           string    `json:"-" bson:"_id"`
	Headline     string    `json:"headline" bson:"headline"`
	Subheadline  string    `json:"subheadline" bson:"subheadline"`
	AboutText    string    `json:"about_text" bson:"about_text"`
	HeroImageURL string    `json:"hero_image_url,omitempty" bson:"hero_image_url,omitempty"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ContactInfo is the site-wide contact block. Singleton row, admin-mutable.
type ContactInfo struct {
	ID           string    `json:"-" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	InstagramURL string    `json:"instagram_url,omitempty" bson:"instagram_url,omitempty"`
	WhatsApp     string    `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Testimonial is a published client quote shown on the marketing pages.
type Testimonial struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	AuthorName string    `json:"author_name" bson:"author_name"`
	Quote      string    `json:"quote" bson:"quote"`
	Rating     int       `json:"rating" bson:"rating"`
	Published  bool      `json:"published" bson:"published"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// Video is a promotional or instructional video shown on the site.
type Video struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	URL         string    `json:"url" bson:"url"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Position    int       `json:"position" bson:"position"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
