package model

import "fmt"

// UnknownGenre is used when a song is added without a genre.
const UnknownGenre = "Unknown"

// Song represents one song known to a session.
//
// Song is a value type: it is created once by NewSong and never modified
// afterwards. Every structure in the session (playlist, rating index,
// recommendation pool) stores its own copy or just the name.
//
// Example:
//
//	song := NewSong("Come Together", 5, "rock")
//	fmt.Println(song) // "Come Together (5)"
type Song struct {
	// Name is the display name. Callers make sure it is not empty.
	Name string

	// Rating is the user rating. No range is enforced.
	Rating int

	// Genre is a free-form genre label.
	Genre string

	// Path is the source file, if the song was imported from disk.
	// Empty for songs entered by hand.
	Path string
}

// NewSong creates a Song. An empty genre becomes UnknownGenre.
func NewSong(name string, rating int, genre string) Song {
	if genre == "" {
		genre = UnknownGenre
	}
	return Song{
		Name:   name,
		Rating: rating,
		Genre:  genre,
	}
}

// WithPath returns a copy of the song that remembers its source file.
func (s Song) WithPath(path string) Song {
	s.Path = path
	return s
}

// String renders the song as "name (rating)".
func (s Song) String() string {
	return fmt.Sprintf("%s (%d)", s.Name, s.Rating)
}
