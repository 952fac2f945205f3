// Package session ties the playlist, play history, rating index and
// recommendation engine together behind the operations a front-end calls.
//
// Each Session is independent; nothing is shared between sessions.
//
//	s := session.New(session.WithLogger(log))
//	s.AddSong("X", 1, "pop")
//	s.AddSong("Y", 1, "pop")
//	s.Navigate(playlist.Next) // "Y", recorded in history
//	s.Undo()                  // "Y"
//	s.SearchByRating(1)       // ["X", "Y"]
//	s.Recommend(0)            // clusters with the default k
//
// A Session is not safe for concurrent use. Callers that add concurrency
// must serialize access, for example by funnelling every call through a
// single goroutine.
package session

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/handiism/playlist-lab/internal/history"
	"github.com/handiism/playlist-lab/internal/model"
	"github.com/handiism/playlist-lab/internal/playlist"
	"github.com/handiism/playlist-lab/internal/ratingtree"
	"github.com/handiism/playlist-lab/internal/recommend"
)

// Session is one independent playlist sandbox.
type Session struct {
	id      string
	list    *playlist.Playlist
	history *history.Stack
	tree    *ratingtree.Tree
	engine  *recommend.Engine
	log     *zap.Logger
}

type options struct {
	logger      *zap.Logger
	genreWeight float64
	defaultK    int
}

// Option configures a Session.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithGenreWeight scales the genre feature used for recommendations.
func WithGenreWeight(w float64) Option {
	return func(o *options) {
		o.genreWeight = w
	}
}

// WithDefaultK sets the cluster count used by Recommend(0).
func WithDefaultK(k int) Option {
	return func(o *options) {
		o.defaultK = k
	}
}

// New creates an empty Session.
func New(opts ...Option) *Session {
	o := options{
		logger:      zap.NewNop(),
		genreWeight: 1.0,
		defaultK:    recommend.DefaultK,
	}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.NewString()
	return &Session{
		id:      id,
		list:    playlist.New(),
		history: history.New(),
		tree:    ratingtree.New(),
		engine:  recommend.NewEngine(o.genreWeight, o.defaultK),
		log:     o.logger.With(zap.String("session", id)),
	}
}

// ID returns the session's unique id.
func (s *Session) ID() string {
	return s.id
}

// AddSong appends a song to the playlist, indexes it by rating and adds
// it to the recommendation pool. It returns the name.
//
// Names are not validated; an empty genre becomes model.UnknownGenre.
func (s *Session) AddSong(name string, rating int, genre string) string {
	return s.Add(model.NewSong(name, rating, genre))
}

// Add is AddSong for an already built song, such as one read from tags.
func (s *Session) Add(song model.Song) string {
	s.list.Add(song)
	s.tree.Insert(song.Rating, song.Name)
	s.engine.Add(song)

	s.log.Debug("song added",
		zap.String("song", song.Name),
		zap.Int("rating", song.Rating),
		zap.String("genre", song.Genre),
		zap.Int("playlist_len", s.list.Len()),
	)
	return song.Name
}

// Navigate moves the playlist cursor and records the resulting song in
// the history. ok is false, and nothing is recorded, only when the
// playlist is empty. At either end the current song is returned and
// recorded again.
func (s *Session) Navigate(dir playlist.Direction) (name string, ok bool) {
	name, ok = s.list.Navigate(dir)
	if !ok {
		s.log.Debug("navigate on empty playlist", zap.Stringer("direction", dir))
		return "", false
	}
	s.history.Push(name)

	s.log.Debug("navigated",
		zap.Stringer("direction", dir),
		zap.String("song", name),
		zap.Int("history_len", s.history.Len()),
	)
	return name, true
}

// RecordPlay pushes name onto the history and returns it.
func (s *Session) RecordPlay(name string) string {
	s.history.Push(name)
	s.log.Debug("play recorded", zap.String("song", name))
	return name
}

// Undo pops the most recent history entry. The playlist cursor is left
// alone; the caller decides what to do with the result.
func (s *Session) Undo() (name string, ok bool) {
	name, ok = s.history.Undo()
	s.log.Debug("undo", zap.String("song", name), zap.Bool("found", ok))
	return name, ok
}

// SearchByRating returns every song with exactly this rating, in the
// order they were added. The result is empty when none match.
func (s *Session) SearchByRating(rating int) []string {
	songs := s.tree.Search(rating)
	s.log.Debug("search by rating", zap.Int("rating", rating), zap.Int("matches", len(songs)))
	return songs
}

// Recommend clusters every added song into k groups and returns the first
// group. k <= 0 uses the session's default.
func (s *Session) Recommend(k int) []string {
	names := s.engine.Recommend(k)
	s.log.Debug("recommend",
		zap.Int("k", k),
		zap.Int("pool", s.engine.Pool().Len()),
		zap.Strings("songs", names),
	)
	return names
}
