package session

import (
	"github.com/handiism/playlist-lab/internal/model"
	"github.com/handiism/playlist-lab/internal/ratingtree"
	"github.com/handiism/playlist-lab/internal/recommend"
)

// Songs returns the playlist from head to tail.
func (s *Session) Songs() []model.Song {
	return s.list.Songs()
}

// SongsReversed returns the playlist from tail to head.
func (s *Session) SongsReversed() []model.Song {
	return s.list.Reverse()
}

// Current returns the song under the playlist cursor.
func (s *Session) Current() (model.Song, bool) {
	return s.list.Current()
}

// CurrentPosition returns the cursor's position, or -1 when empty.
func (s *Session) CurrentPosition() int {
	return s.list.CurrentPosition()
}

// History returns the play history, oldest first.
func (s *Session) History() []string {
	return s.history.Entries()
}

// TreeRoot returns a read-only view of the rating index root, or nil.
func (s *Session) TreeRoot() *ratingtree.Node {
	return s.tree.Root()
}

// TreeHeight returns the number of levels in the rating index.
func (s *Session) TreeHeight() int {
	return s.tree.Height()
}

// Candidates returns the recommendation pool in insertion order.
func (s *Session) Candidates() []recommend.Candidate {
	return s.engine.Pool().Candidates()
}
