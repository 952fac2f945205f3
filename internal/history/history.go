// Package history records which songs were played, most recent last.
package history

// Stack is a last-in-first-out record of played song names.
// Duplicates are allowed. A Stack is not safe for concurrent use.
type Stack struct {
	entries []string
}

// New creates an empty Stack.
func New() *Stack {
	return &Stack{}
}

// Push records a play and returns the name.
func (s *Stack) Push(name string) string {
	s.entries = append(s.entries, name)
	return name
}

// Undo removes and returns the most recent entry.
// ok is false when the stack is empty.
//
// Undo only exposes the entry; it does not move any playlist cursor.
func (s *Stack) Undo() (name string, ok bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	last := len(s.entries) - 1
	name = s.entries[last]
	s.entries[last] = ""
	s.entries = s.entries[:last]
	return name, true
}

// Peek returns the most recent entry without removing it.
func (s *Stack) Peek() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the stack, oldest first.
func (s *Stack) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}
