package playlist

import (
	"errors"
	"slices"
	"testing"

	"github.com/handiism/playlist-lab/internal/model"
)

func newTestPlaylist(names ...string) *Playlist {
	p := New()
	for _, name := range names {
		p.Add(model.NewSong(name, 1, "pop"))
	}
	return p
}

func namesOf(songs []model.Song) []string {
	names := make([]string, len(songs))
	for i, s := range songs {
		names[i] = s.Name
	}
	return names
}

func TestPlaylist_Empty(t *testing.T) {
	p := New()

	if name, ok := p.Navigate(Next); ok || name != "" {
		t.Errorf("Navigate(Next) on empty = (%q, %v), want (\"\", false)", name, ok)
	}
	if name, ok := p.Navigate(Prev); ok || name != "" {
		t.Errorf("Navigate(Prev) on empty = (%q, %v), want (\"\", false)", name, ok)
	}
	if _, ok := p.Current(); ok {
		t.Error("Current() should report false on an empty playlist")
	}
	if p.Len() != 0 || len(p.Songs()) != 0 || len(p.Reverse()) != 0 {
		t.Error("empty playlist should have no songs")
	}
	if p.CurrentPosition() != -1 {
		t.Errorf("CurrentPosition() = %d, want -1", p.CurrentPosition())
	}
}

func TestPlaylist_Add(t *testing.T) {
	p := New()

	if got := p.Add(model.NewSong("X", 1, "pop")); got != "X" {
		t.Errorf("Add() = %q, want %q", got, "X")
	}
	p.Add(model.NewSong("Y", 1, "pop"))

	if got := p.Names(); !slices.Equal(got, []string{"X", "Y"}) {
		t.Errorf("Names() = %v, want [X Y]", got)
	}

	cur, ok := p.Current()
	if !ok || cur.Name != "X" {
		t.Errorf("Current() = %q, want %q", cur.Name, "X")
	}

	if name, _ := p.Navigate(Next); name != "Y" {
		t.Errorf("Navigate(Next) = %q, want %q", name, "Y")
	}
	if cur, _ := p.Current(); cur.Name != "Y" {
		t.Errorf("Current() after next = %q, want %q", cur.Name, "Y")
	}
}

func TestPlaylist_OrderAndReverse(t *testing.T) {
	input := []string{"a", "b", "c", "d", "e"}
	p := newTestPlaylist(input...)

	if got := namesOf(p.Songs()); !slices.Equal(got, input) {
		t.Errorf("Songs() = %v, want %v", got, input)
	}

	want := slices.Clone(input)
	slices.Reverse(want)
	if got := namesOf(p.Reverse()); !slices.Equal(got, want) {
		t.Errorf("Reverse() = %v, want %v", got, want)
	}
}

func TestPlaylist_LinksConsistent(t *testing.T) {
	p := newTestPlaylist("a", "b", "c", "d")

	if p.nodes[p.head].prev != nilIndex {
		t.Error("head.prev should be nil")
	}
	if p.nodes[p.tail].next != nilIndex {
		t.Error("tail.next should be nil")
	}
	for i := p.head; p.nodes[i].next != nilIndex; i = p.nodes[i].next {
		next := p.nodes[i].next
		if p.nodes[next].prev != i {
			t.Errorf("node %d: next.prev = %d, want %d", i, p.nodes[next].prev, i)
		}
	}
}

func TestPlaylist_NextThenPrev(t *testing.T) {
	p := newTestPlaylist("a", "b", "c")

	for start := 0; start < p.Len(); start++ {
		before, _ := p.Current()
		p.Navigate(Next)
		back, _ := p.Navigate(Prev)
		// Moving next from the tail is a no-op, so prev then lands one
		// earlier. Only interior and head positions round-trip.
		if start < p.Len()-1 && back != before.Name {
			t.Errorf("start %d: next+prev = %q, want %q", start, back, before.Name)
		}
		p.Navigate(Next)
	}

	single := newTestPlaylist("only")
	single.Navigate(Next)
	if name, _ := single.Navigate(Prev); name != "only" {
		t.Errorf("single-song next+prev = %q, want %q", name, "only")
	}
}

func TestPlaylist_BoundariesIdempotent(t *testing.T) {
	p := newTestPlaylist("a", "b", "c")

	for i := 0; i < 5; i++ {
		name, ok := p.Navigate(Prev)
		if !ok || name != "a" {
			t.Fatalf("Navigate(Prev) at head = (%q, %v), want (\"a\", true)", name, ok)
		}
	}

	p.Navigate(Next)
	p.Navigate(Next)
	for i := 0; i < 5; i++ {
		name, ok := p.Navigate(Next)
		if !ok || name != "c" {
			t.Fatalf("Navigate(Next) at tail = (%q, %v), want (\"c\", true)", name, ok)
		}
	}
	if p.CurrentPosition() != 2 {
		t.Errorf("CurrentPosition() = %d, want 2", p.CurrentPosition())
	}
}

func TestPlaylist_AddKeepsCursor(t *testing.T) {
	p := newTestPlaylist("a", "b")
	p.Navigate(Next)
	p.Add(model.NewSong("c", 1, "pop"))

	if cur, _ := p.Current(); cur.Name != "b" {
		t.Errorf("Current() = %q, want %q", cur.Name, "b")
	}
}

func TestPlaylist_WalkStopsEarly(t *testing.T) {
	p := newTestPlaylist("a", "b", "c")

	var seen []string
	p.Walk(func(pos int, song model.Song) bool {
		seen = append(seen, song.Name)
		return pos < 1
	})

	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Errorf("Walk visited %v, want [a b]", seen)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"next", Next, false},
		{"prev", Prev, false},
		{"up", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownDirection) {
					t.Errorf("ParseDirection(%q) error = %v, want ErrUnknownDirection", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseDirection(%q) = (%v, %v), want %v", tt.input, got, err, tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}
