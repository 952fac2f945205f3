// Package playlist implements the ordered play queue of a session.
//
// The queue is a doubly-linked list whose nodes live in a slice and link
// to each other by index, so the Playlist is the single owner of every
// node and the back/forward links never own anything.
//
// # Navigation
//
// A cursor marks the current song. Navigate moves it one step:
//
//	p := playlist.New()
//	p.Add(model.NewSong("X", 1, "pop"))
//	p.Add(model.NewSong("Y", 1, "pop"))
//	name, _ := p.Navigate(playlist.Next) // "Y"
//	name, _ = p.Navigate(playlist.Next)  // still "Y": no further movement
//
// Navigate only reports ok=false when nothing was ever added.
package playlist
