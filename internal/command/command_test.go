package command

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/handiism/playlist-lab/internal/playlist"
	"github.com/handiism/playlist-lab/internal/session"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"add X 1 pop", Command{Op: OpAdd, Name: "X", Rating: 1, Genre: "pop"}},
		{`add "Come Together" 5 classic rock`, Command{Op: OpAdd, Name: "Come Together", Rating: 5, Genre: "classic rock"}},
		{"add Y", Command{Op: OpAdd, Name: "Y", Rating: 1}},
		{"add Z five jazz", Command{Op: OpAdd, Name: "Z", Rating: 1, Genre: "jazz"}},
		{"NEXT", Command{Op: OpNavigate, Direction: playlist.Next}},
		{"prev", Command{Op: OpNavigate, Direction: playlist.Prev}},
		{"play Some Song", Command{Op: OpPlay, Name: "Some Song"}},
		{"undo", Command{Op: OpUndo}},
		{"search 3", Command{Op: OpSearch, Rating: 3}},
		{"search", Command{Op: OpSearch, Rating: 1}},
		{"search x", Command{Op: OpSearch, Rating: 1}},
		{"recommend", Command{Op: OpRecommend}},
		{"recommend 3", Command{Op: OpRecommend, K: 3}},
		{"  show  ", Command{Op: OpShow}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"# comment", ErrEmpty},
		{"shuffle", ErrUnknownCommand},
		{"add", ErrMissingArgument},
		{`add ""`, ErrMissingArgument},
		{"play", ErrMissingArgument},
		{`add "unterminated`, errUnterminatedQuote},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if _, err := Parse(tt.line); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}

	if _, err := Parse("recommend two"); err == nil {
		t.Error("Parse(recommend two) should fail")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"a b  c", []string{"a", "b", "c"}},
		{`add "a b" c`, []string{"add", "a b", "c"}},
		{`say "quote \" inside"`, []string{"say", `quote " inside`}},
		{"tab\tseparated", []string{"tab", "separated"}},
	}

	for _, tt := range tests {
		got, err := split(tt.line)
		if err != nil {
			t.Fatalf("split(%q) error = %v", tt.line, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("split(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestExec(t *testing.T) {
	s := session.New()

	steps := []struct {
		line string
		want string
	}{
		{"next", "Current Song: None"},
		{"undo", "Undo: None"},
		{"add X 1 pop", "Added: X"},
		{"add Y 1 pop", "Added: Y"},
		{"next", "Current Song: Y"},
		{"next", "Current Song: Y"},
		{"search 1", "Rating Search: [X, Y]"},
		{"search 9", "Rating Search: []"},
		{"undo", "Undo: Y"},
		{"play X", "Played: X"},
		{"show", "Current Song: Y\nPlaylist: [X, Y]\nPlayback History: [Y, X]"},
		{"recommend", "Recommendations: [X, Y]"},
	}

	for _, step := range steps {
		got, err := Exec(s, step.line)
		if err != nil {
			t.Fatalf("Exec(%q) error = %v", step.line, err)
		}
		if got != step.want {
			t.Errorf("Exec(%q) = %q, want %q", step.line, got, step.want)
		}
	}
}

func TestShow_Empty(t *testing.T) {
	want := "Current Song: None\nPlaylist: []\nPlayback History: []"
	if got := Show(session.New()); got != want {
		t.Errorf("Show() = %q, want %q", got, want)
	}
}

func TestReplay(t *testing.T) {
	script := strings.Join([]string{
		"# build a playlist",
		"add A 5 rock",
		"",
		"add B 3 pop",
		"search 3",
	}, "\n")

	var out strings.Builder
	s := session.New()
	if err := Replay(s, strings.NewReader(script), &out); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}

	want := "Added: A\nAdded: B\nRating Search: [B]\n"
	if out.String() != want {
		t.Errorf("Replay() output = %q, want %q", out.String(), want)
	}
}

func TestReplay_StopsOnBadLine(t *testing.T) {
	s := session.New()
	err := Replay(s, strings.NewReader("add A\nbogus\nadd B"), nil)

	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("Replay() error = %v, want ErrUnknownCommand", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name line 2", err)
	}
	if len(s.Songs()) != 1 {
		t.Errorf("Songs() = %d, want 1 (replay stops at the bad line)", len(s.Songs()))
	}
}
