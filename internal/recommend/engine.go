package recommend

import "github.com/handiism/playlist-lab/internal/model"

// Engine owns a candidate pool and answers recommendation requests.
type Engine struct {
	pool     *Pool
	defaultK int
}

// NewEngine creates an Engine. defaultK is used when Recommend gets a
// non-positive k; values below 1 fall back to DefaultK.
func NewEngine(genreWeight float64, defaultK int) *Engine {
	if defaultK <= 0 {
		defaultK = DefaultK
	}
	return &Engine{
		pool:     NewPool(genreWeight),
		defaultK: defaultK,
	}
}

// Add extends the candidate pool.
func (e *Engine) Add(song model.Song) Candidate {
	return e.pool.Add(song)
}

// Recommend clusters the whole pool and returns the first cluster's names.
func (e *Engine) Recommend(k int) []string {
	if k <= 0 {
		k = e.defaultK
	}
	return Cluster(e.pool.Candidates(), k)
}

// Pool returns the engine's candidate pool.
func (e *Engine) Pool() *Pool {
	return e.pool
}
