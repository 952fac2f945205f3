package session

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/handiism/playlist-lab/internal/logging"
	"github.com/handiism/playlist-lab/internal/model"
	"github.com/handiism/playlist-lab/internal/playlist"
)

func names(songs []model.Song) []string {
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.Name
	}
	return out
}

func TestSession_AddAndNavigate(t *testing.T) {
	s := New()

	if got := s.AddSong("X", 1, "pop"); got != "X" {
		t.Errorf("AddSong() = %q, want %q", got, "X")
	}
	s.AddSong("Y", 1, "pop")

	if got := names(s.Songs()); !slices.Equal(got, []string{"X", "Y"}) {
		t.Errorf("Songs() = %v, want [X Y]", got)
	}
	if cur, _ := s.Current(); cur.Name != "X" {
		t.Errorf("Current() = %q, want %q", cur.Name, "X")
	}

	name, ok := s.Navigate(playlist.Next)
	if !ok || name != "Y" {
		t.Errorf("Navigate(Next) = (%q, %v), want (\"Y\", true)", name, ok)
	}
	if cur, _ := s.Current(); cur.Name != "Y" {
		t.Errorf("Current() = %q, want %q", cur.Name, "Y")
	}
	if got := s.History(); !slices.Equal(got, []string{"Y"}) {
		t.Errorf("History() = %v, want [Y]", got)
	}
}

func TestSession_NavigateEmptyRecordsNothing(t *testing.T) {
	s := New()

	if _, ok := s.Navigate(playlist.Next); ok {
		t.Error("Navigate() on an empty session should report false")
	}
	if len(s.History()) != 0 {
		t.Errorf("History() = %v, want empty", s.History())
	}
}

func TestSession_BoundaryNavigationRecordsAgain(t *testing.T) {
	s := New()
	s.AddSong("only", 3, "jazz")

	s.Navigate(playlist.Next)
	s.Navigate(playlist.Next)

	if got := s.History(); !slices.Equal(got, []string{"only", "only"}) {
		t.Errorf("History() = %v, want [only only]", got)
	}
}

func TestSession_UndoLeavesCursor(t *testing.T) {
	s := New()
	s.AddSong("a", 1, "")
	s.AddSong("b", 2, "")
	s.AddSong("c", 3, "")

	s.Navigate(playlist.Next)
	s.Navigate(playlist.Next)

	if name, ok := s.Undo(); !ok || name != "c" {
		t.Errorf("Undo() = (%q, %v), want (\"c\", true)", name, ok)
	}
	if cur, _ := s.Current(); cur.Name != "c" {
		t.Errorf("Current() after undo = %q, want %q", cur.Name, "c")
	}
	if name, _ := s.Undo(); name != "b" {
		t.Errorf("Undo() = %q, want %q", name, "b")
	}
	if _, ok := s.Undo(); ok {
		t.Error("third Undo() should report false")
	}
}

func TestSession_RecordPlay(t *testing.T) {
	s := New()
	for _, n := range []string{"a", "b", "c"} {
		if got := s.RecordPlay(n); got != n {
			t.Errorf("RecordPlay(%q) = %q", n, got)
		}
	}
	for _, want := range []string{"c", "b", "a"} {
		if got, _ := s.Undo(); got != want {
			t.Errorf("Undo() = %q, want %q", got, want)
		}
	}
}

func TestSession_SearchByRating(t *testing.T) {
	s := New()
	for i, r := range []int{5, 3, 8, 3} {
		s.AddSong(string(rune('A'+i)), r, "pop")
	}

	if got := s.SearchByRating(3); !slices.Equal(got, []string{"B", "D"}) {
		t.Errorf("SearchByRating(3) = %v, want [B D]", got)
	}
	if got := s.SearchByRating(9); got == nil || len(got) != 0 {
		t.Errorf("SearchByRating(9) = %#v, want []string{}", got)
	}

	root := s.TreeRoot()
	if root == nil || root.Rating() != 5 {
		t.Fatalf("TreeRoot() = %v, want rating 5", root)
	}
	if s.TreeHeight() != 2 {
		t.Errorf("TreeHeight() = %d, want 2", s.TreeHeight())
	}
}

func TestSession_Recommend(t *testing.T) {
	s := New(WithGenreWeight(0))

	if got := s.Recommend(0); got == nil || len(got) != 0 {
		t.Errorf("Recommend() on empty session = %#v, want []string{}", got)
	}

	s.AddSong("low1", 1, "pop")
	s.AddSong("high1", 10, "rock")
	s.AddSong("low2", 2, "jazz")
	s.AddSong("high2", 9, "metal")

	first := s.Recommend(0)
	if !slices.Equal(first, []string{"low1", "low2"}) {
		t.Errorf("Recommend(0) = %v, want [low1 low2]", first)
	}
	if again := s.Recommend(0); !slices.Equal(again, first) {
		t.Errorf("Recommend(0) is not deterministic: %v then %v", first, again)
	}
	if got := len(s.Candidates()); got != 4 {
		t.Errorf("Candidates() has %d entries, want 4", got)
	}
}

func TestSession_DefaultK(t *testing.T) {
	s := New(WithDefaultK(1), WithGenreWeight(0))
	s.AddSong("a", 1, "")
	s.AddSong("b", 100, "")

	if got := s.Recommend(0); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Recommend(0) with k=1 = %v, want [a b]", got)
	}
}

func TestSession_Independent(t *testing.T) {
	a := New()
	b := New()
	a.AddSong("only-in-a", 1, "pop")

	if len(b.Songs()) != 0 || len(b.SearchByRating(1)) != 0 {
		t.Error("sessions should not share state")
	}
	if a.ID() == b.ID() {
		t.Error("sessions should have distinct ids")
	}
}

func TestSession_Logging(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithLogger(logging.NewWriter(&buf, zapcore.DebugLevel)))
	s.AddSong("X", 4, "pop")

	out := buf.String()
	if !strings.Contains(out, `"msg":"song added"`) {
		t.Errorf("missing add log line: %s", out)
	}
	if !strings.Contains(out, `"session":"`+s.ID()+`"`) {
		t.Errorf("log line should carry the session id: %s", out)
	}
}
