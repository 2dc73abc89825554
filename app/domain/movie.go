package domain

import (
	"fmt"
	"strings"
)

// Movie is a catalog item. ID is assigned by the system of record on
// insert and is immutable afterward; Genres is optional comma-delimited
// free text.
type Movie struct {
	ID     int64  `json:"movieId,omitempty"`
	Title  string `json:"title"`
	Genres string `json:"genres,omitempty"`
}

// NewMovie validates a movie prior to insertion. The title is trimmed and
// must not be blank; the identifier must be absent.
func NewMovie(title, genres string) (*Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be blank", ErrInvalidInput)
	}

	return &Movie{
		Title:  title,
		Genres: genres,
	}, nil
}

// GenreTags splits the genre field on commas, trims and lower-cases each
// tag, and drops empties. Duplicate tags may survive; downstream cache
// deletes are idempotent so that is harmless.
func (m *Movie) GenreTags() []string {
	if m.Genres == "" {
		return nil
	}

	parts := strings.Split(m.Genres, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
