package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/handiism/playlist-lab/internal/session"
)

// Replay executes every line of r against s and writes each result to w,
// one per line. Blank lines and comments are skipped. The first bad line
// stops the replay with an error naming its line number.
func Replay(s *session.Session, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		out, err := Exec(s, scanner.Text())
		if errors.Is(err, ErrEmpty) {
			continue
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if w != nil {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
