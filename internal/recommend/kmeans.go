package recommend

import (
	"github.com/muesli/clusters"
)

const (
	// DefaultK is the cluster count used when k is not positive.
	DefaultK = 2

	// Rounds is the fixed number of refinement rounds.
	Rounds = 5
)

// Candidate is one clustering input: a song name and its features.
// It implements clusters.Observation.
type Candidate struct {
	Name     string
	Features clusters.Coordinates
}

// Coordinates returns the feature vector.
func (c Candidate) Coordinates() clusters.Coordinates {
	return c.Features
}

// Distance returns the squared Euclidean distance to point.
func (c Candidate) Distance(point clusters.Coordinates) float64 {
	return c.Features.Distance(point)
}

// Cluster runs the fixed policy over cands and returns the names in the
// first cluster.
//
// The result is empty, never nil, when cands is empty or the first
// cluster ends up with no members.
func Cluster(cands []Candidate, k int) []string {
	groups := Partition(cands, k)
	if len(groups) == 0 {
		return []string{}
	}

	names := make([]string, 0, len(groups[0].Observations))
	for _, obs := range groups[0].Observations {
		if c, ok := obs.(Candidate); ok {
			names = append(names, c.Name)
		}
	}
	return names
}

// Partition runs the fixed policy and returns every cluster of the last
// round, including empty ones, with the centroid each was assigned
// against. Members keep pool order.
func Partition(cands []Candidate, k int) clusters.Clusters {
	if len(cands) == 0 {
		return nil
	}
	if k <= 0 {
		k = DefaultK
	}
	k = min(k, len(cands))

	centroids := make([]clusters.Coordinates, k)
	for i := range centroids {
		centroids[i] = append(clusters.Coordinates(nil), cands[i].Features...)
	}

	var groups clusters.Clusters
	for round := 0; round < Rounds; round++ {
		groups = assign(cands, centroids)
		centroids = recenter(groups)
	}
	return groups
}

// assign builds one cluster per centroid and places every candidate in
// the nearest one.
func assign(cands []Candidate, centroids []clusters.Coordinates) clusters.Clusters {
	groups := make(clusters.Clusters, len(centroids))
	for i, c := range centroids {
		groups[i].Center = c
	}

	for _, c := range cands {
		ci := nearest(groups, c)
		groups[ci].Observations = append(groups[ci].Observations, c)
	}
	return groups
}

// nearest returns the index of the first cluster at minimum distance.
func nearest(groups clusters.Clusters, c Candidate) int {
	best := 0
	bestDist := c.Distance(groups[0].Center)
	for i := 1; i < len(groups); i++ {
		if d := c.Distance(groups[i].Center); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// recenter returns the mean of every non-empty cluster, in cluster order.
// Empty clusters contribute no centroid, so k can shrink between rounds.
func recenter(groups clusters.Clusters) []clusters.Coordinates {
	centroids := make([]clusters.Coordinates, 0, len(groups))
	for _, g := range groups {
		if len(g.Observations) == 0 {
			continue
		}
		center, err := g.Observations.Center()
		if err != nil {
			continue
		}
		centroids = append(centroids, center)
	}
	return centroids
}
