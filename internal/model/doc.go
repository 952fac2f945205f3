// Package model defines the song record shared by every playlist-lab
// package.
//
// # Song
//
// Song is an immutable value holding a name, a rating and a genre:
//
//	song := model.NewSong("Come Together", 5, "rock")
//	fmt.Println(song.Name, song.Rating, song.Genre)
//
// Songs imported from MP3 files also carry their source path:
//
//	song = song.WithPath("/music/come-together.mp3")
//
// No rating range is enforced and names are not validated; callers
// filter their input before building a Song.
package model
