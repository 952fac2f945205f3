package recommend

import (
	"github.com/muesli/clusters"

	"github.com/handiism/playlist-lab/internal/model"
)

// Pool is the append-only list of clustering candidates.
//
// Genres are encoded by first appearance: the first genre seen is 0,
// the next new one 1, and so on. The code is multiplied by the weight
// given to NewPool, so a weight of 0 clusters on rating alone.
type Pool struct {
	candidates []Candidate
	genres     map[string]int
	weight     float64
}

// NewPool creates an empty Pool with the given genre weight.
func NewPool(genreWeight float64) *Pool {
	return &Pool{
		genres: make(map[string]int),
		weight: genreWeight,
	}
}

// Add appends a song and returns the candidate built for it.
func (p *Pool) Add(song model.Song) Candidate {
	c := Candidate{
		Name:     song.Name,
		Features: clusters.Coordinates{float64(song.Rating), p.genreCode(song.Genre) * p.weight},
	}
	p.candidates = append(p.candidates, c)
	return c
}

func (p *Pool) genreCode(genre string) float64 {
	code, ok := p.genres[genre]
	if !ok {
		code = len(p.genres)
		p.genres[genre] = code
	}
	return float64(code)
}

// Candidates returns a copy of the pool in insertion order.
func (p *Pool) Candidates() []Candidate {
	out := make([]Candidate, len(p.candidates))
	copy(out, p.candidates)
	return out
}

// Len returns the number of candidates.
func (p *Pool) Len() int {
	return len(p.candidates)
}

// Genres returns the number of distinct genres seen.
func (p *Pool) Genres() int {
	return len(p.genres)
}
