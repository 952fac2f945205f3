// Package command parses one-line session commands and applies them.
//
// It plays the part of the original form-based front-end: it turns text
// into well-formed calls on a session and formats the results.
//
//	add "Come Together" 5 rock
//	next | prev
//	play <name>
//	undo
//	search <rating>
//	recommend [k]
//	show
//
// A rating that is missing or not an integer becomes 1 and a missing
// genre becomes "Unknown", matching the original form's fallbacks.
// Absent results print as None.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/handiism/playlist-lab/internal/playlist"
	"github.com/handiism/playlist-lab/internal/session"
)

var (
	// ErrEmpty is returned for blank lines and comments.
	ErrEmpty = errors.New("empty command")

	// ErrUnknownCommand is returned for an unrecognised verb.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a required argument is absent.
	ErrMissingArgument = errors.New("missing argument")
)

// defaultRating is used when a rating cannot be parsed.
const defaultRating = 1

// Op identifies a command.
type Op int

const (
	OpAdd Op = iota
	OpNavigate
	OpPlay
	OpUndo
	OpSearch
	OpRecommend
	OpShow
)

// Command is one parsed line.
type Command struct {
	Op        Op
	Name      string
	Rating    int
	Genre     string
	K         int
	Direction playlist.Direction
}

// Parse turns a line into a Command. Lines starting with '#' are
// comments and, like blank lines, yield ErrEmpty.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, ErrEmpty
	}

	args, err := split(line)
	if err != nil {
		return Command{}, err
	}
	verb, args := strings.ToLower(args[0]), args[1:]

	switch verb {
	case "add":
		if len(args) == 0 || args[0] == "" {
			return Command{}, fmt.Errorf("add: %w: name", ErrMissingArgument)
		}
		cmd := Command{Op: OpAdd, Name: args[0], Rating: defaultRating}
		if len(args) > 1 {
			cmd.Rating = parseRating(args[1])
		}
		if len(args) > 2 {
			cmd.Genre = strings.Join(args[2:], " ")
		}
		return cmd, nil

	case "next", "prev":
		dir, err := playlist.ParseDirection(verb)
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpNavigate, Direction: dir}, nil

	case "play":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("play: %w: name", ErrMissingArgument)
		}
		return Command{Op: OpPlay, Name: strings.Join(args, " ")}, nil

	case "undo":
		return Command{Op: OpUndo}, nil

	case "search":
		cmd := Command{Op: OpSearch, Rating: defaultRating}
		if len(args) > 0 {
			cmd.Rating = parseRating(args[0])
		}
		return cmd, nil

	case "recommend":
		cmd := Command{Op: OpRecommend}
		if len(args) > 0 {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return Command{}, fmt.Errorf("recommend: invalid k %q: %w", args[0], err)
			}
			cmd.K = k
		}
		return cmd, nil

	case "show":
		return Command{Op: OpShow}, nil

	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
	}
}

func parseRating(s string) int {
	r, err := strconv.Atoi(s)
	if err != nil {
		return defaultRating
	}
	return r
}

// Apply runs the command against s and returns its formatted result.
func (c Command) Apply(s *session.Session) string {
	switch c.Op {
	case OpAdd:
		return "Added: " + s.AddSong(c.Name, c.Rating, c.Genre)
	case OpNavigate:
		name, ok := s.Navigate(c.Direction)
		return "Current Song: " + orNone(name, ok)
	case OpPlay:
		return "Played: " + s.RecordPlay(c.Name)
	case OpUndo:
		name, ok := s.Undo()
		return "Undo: " + orNone(name, ok)
	case OpSearch:
		return "Rating Search: " + FormatList(s.SearchByRating(c.Rating))
	case OpRecommend:
		return "Recommendations: " + FormatList(s.Recommend(c.K))
	case OpShow:
		return Show(s)
	default:
		return ""
	}
}

// Exec parses and applies one line.
func Exec(s *session.Session, line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	return cmd.Apply(s), nil
}

// Show renders the current song, the playlist and the history.
func Show(s *session.Session) string {
	current := "None"
	if song, ok := s.Current(); ok {
		current = song.Name
	}

	songs := s.Songs()
	names := make([]string, len(songs))
	for i, song := range songs {
		names[i] = song.Name
	}

	return fmt.Sprintf("Current Song: %s\nPlaylist: %s\nPlayback History: %s",
		current, FormatList(names), FormatList(s.History()))
}

// FormatList renders names as "[a, b, c]".
func FormatList(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}

func orNone(name string, ok bool) string {
	if !ok {
		return "None"
	}
	return name
}
