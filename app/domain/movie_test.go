package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovie(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		genres    string
		wantErr   bool
		wantTitle string
	}{
		{
			name:      "valid movie",
			title:     "The Matrix",
			genres:    "Action,Sci-Fi",
			wantErr:   false,
			wantTitle: "The Matrix",
		},
		{
			name:      "title is trimmed",
			title:     "  Heat  ",
			genres:    "",
			wantErr:   false,
			wantTitle: "Heat",
		},
		{
			name:    "blank title rejected",
			title:   "   ",
			genres:  "Drama",
			wantErr: true,
		},
		{
			name:    "empty title rejected",
			title:   "",
			genres:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movie, err := NewMovie(tt.title, tt.genres)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Nil(t, movie)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, movie.Title)
			assert.Equal(t, tt.genres, movie.Genres)
			assert.Zero(t, movie.ID)
		})
	}
}

func TestMovie_GenreTags(t *testing.T) {
	tests := []struct {
		name   string
		genres string
		want   []string
	}{
		{
			name:   "empty genres",
			genres: "",
			want:   nil,
		},
		{
			name:   "single genre lowercased",
			genres: "Action",
			want:   []string{"action"},
		},
		{
			name:   "multiple genres split and trimmed",
			genres: "Action, Comedy , Sci-Fi",
			want:   []string{"action", "comedy", "sci-fi"},
		},
		{
			name:   "empty segments dropped",
			genres: "Action,,  ,Drama",
			want:   []string{"action", "drama"},
		},
		{
			name:   "duplicates survive",
			genres: "Action,action",
			want:   []string{"action", "action"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movie := &Movie{Title: "x", Genres: tt.genres}
			assert.Equal(t, tt.want, movie.GenreTags())
		})
	}
}
