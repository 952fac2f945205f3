// Package recommend picks a representative subset of songs with a small,
// deterministic k-means pass.
//
// # Policy
//
// The clustering policy is fixed and intentionally simple:
//
//  1. An empty pool yields no recommendations.
//  2. The first k candidates, in pool order, seed the centroids
//     (fewer if the pool is smaller than k).
//  3. Exactly Rounds refinement rounds run. Each round assigns every
//     candidate to the centroid at the smallest squared Euclidean
//     distance (lowest index on ties) and recenters each cluster on the
//     mean of its members. Clusters that end up empty are dropped.
//  4. The members of cluster 0 from the last round are returned in
//     pool order.
//
// There is no convergence check and no random seeding, so the same pool
// always yields the same answer.
//
// # Features
//
// Pool turns a song into a feature vector of its rating and a numeric
// genre code (the genre's first-seen position in the pool, scaled by a
// weight):
//
//	pool := recommend.NewPool(1.0)
//	pool.Add(model.NewSong("A", 5, "rock")) // [5, 0]
//	pool.Add(model.NewSong("B", 1, "jazz")) // [1, 1]
//	names := recommend.Cluster(pool.Candidates(), 2)
package recommend
