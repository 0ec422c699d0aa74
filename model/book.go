// model/book.go
package model

import "time"

type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"published_date"`
	Pages         int       `json:"pages"`
	AuthorCountry string    `json:"author_country"`
	LibraryID     string    `json:"library_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookUpdate carries a partial edit; nil fields are left unchanged.
type BookUpdate struct {
	Title         *string    `json:"title,omitempty"`
	Author        *string    `json:"author,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	Pages         *int       `json:"pages,omitempty"`
	AuthorCountry *string    `json:"author_country,omitempty"`
	LibraryID     *string    `json:"library_id,omitempty"`
}

// Apply returns a copy of b with the non-nil fields of u applied.
func (u BookUpdate) Apply(b Book) Book {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.PublishedDate != nil {
		b.PublishedDate = *u.PublishedDate
	}
	if u.Pages != nil {
		b.Pages = *u.Pages
	}
	if u.AuthorCountry != nil {
		b.AuthorCountry = *u.AuthorCountry
	}
	if u.LibraryID != nil {
		b.LibraryID = *u.LibraryID
	}
	return b
}
