package playlist

import (
	"errors"
	"fmt"

	"github.com/handiism/playlist-lab/internal/model"
)

// ErrUnknownDirection is returned by ParseDirection for anything other
// than "next" or "prev".
var ErrUnknownDirection = errors.New("unknown direction")

// Direction selects which neighbour Navigate moves to.
type Direction int

const (
	// Next moves the cursor towards the tail.
	Next Direction = iota

	// Prev moves the cursor towards the head.
	Prev
)

// String returns "next" or "prev".
func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts "next" or "prev" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "next":
		return Next, nil
	case "prev":
		return Prev, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// nilIndex marks a missing link.
const nilIndex = -1

type node struct {
	song model.Song
	prev int
	next int
}

// Playlist is a doubly-linked list of songs with a movable cursor.
//
// Invariants:
//   - if nodes[a].next == b then nodes[b].prev == a
//   - nodes[head].prev and nodes[tail].next are nilIndex
//   - current is nilIndex iff the playlist is empty
//
// Nodes are never removed, so every index stays reachable from head.
// A Playlist is not safe for concurrent use.
type Playlist struct {
	nodes   []node
	head    int
	tail    int
	current int
}

// New creates an empty Playlist.
func New() *Playlist {
	return &Playlist{
		head:    nilIndex,
		tail:    nilIndex,
		current: nilIndex,
	}
}

// Add appends a song at the tail and returns its name.
//
// The first song added becomes head, tail and current at once. Later
// additions leave the cursor where it is.
func (p *Playlist) Add(song model.Song) string {
	idx := len(p.nodes)
	p.nodes = append(p.nodes, node{song: song, prev: p.tail, next: nilIndex})

	if p.head == nilIndex {
		p.head = idx
		p.current = idx
	} else {
		p.nodes[p.tail].next = idx
	}
	p.tail = idx

	return song.Name
}

// Navigate moves the cursor one step in the given direction and returns
// the name of the current song.
//
// At either end the cursor stays put and the current name is returned
// again. ok is false only when the playlist is empty.
func (p *Playlist) Navigate(dir Direction) (name string, ok bool) {
	if p.current == nilIndex {
		return "", false
	}

	cur := p.nodes[p.current]
	switch {
	case dir == Next && cur.next != nilIndex:
		p.current = cur.next
	case dir == Prev && cur.prev != nilIndex:
		p.current = cur.prev
	}

	return p.nodes[p.current].song.Name, true
}

// Current returns the song under the cursor.
func (p *Playlist) Current() (model.Song, bool) {
	if p.current == nilIndex {
		return model.Song{}, false
	}
	return p.nodes[p.current].song, true
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return len(p.nodes)
}

// Walk calls fn for each song from head to tail, with its position.
// Walking stops early if fn returns false.
func (p *Playlist) Walk(fn func(pos int, song model.Song) bool) {
	pos := 0
	for i := p.head; i != nilIndex; i = p.nodes[i].next {
		if !fn(pos, p.nodes[i].song) {
			return
		}
		pos++
	}
}

// Songs returns every song in order from head to tail.
func (p *Playlist) Songs() []model.Song {
	songs := make([]model.Song, 0, len(p.nodes))
	p.Walk(func(_ int, song model.Song) bool {
		songs = append(songs, song)
		return true
	})
	return songs
}

// Reverse returns every song from tail to head, following prev links.
func (p *Playlist) Reverse() []model.Song {
	songs := make([]model.Song, 0, len(p.nodes))
	for i := p.tail; i != nilIndex; i = p.nodes[i].prev {
		songs = append(songs, p.nodes[i].song)
	}
	return songs
}

// Names returns the song names from head to tail.
func (p *Playlist) Names() []string {
	names := make([]string, 0, len(p.nodes))
	p.Walk(func(_ int, song model.Song) bool {
		names = append(names, song.Name)
		return true
	})
	return names
}

// CurrentPosition returns the cursor's position counted from head,
// or -1 if the playlist is empty.
func (p *Playlist) CurrentPosition() int {
	if p.current == nilIndex {
		return -1
	}
	pos := 0
	for i := p.head; i != p.current; i = p.nodes[i].next {
		pos++
	}
	return pos
}
