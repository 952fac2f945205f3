// Package ratingtree indexes song names by rating in a binary search tree.
//
// Each tree node is a bucket holding every song with one exact rating,
// in insertion order:
//
//	tree := ratingtree.New()
//	tree.Insert(5, "A")
//	tree.Insert(3, "B")
//	tree.Insert(3, "D")
//	tree.Search(3) // ["B", "D"]
//	tree.Search(9) // []
//
// The tree is never rebalanced, so its shape follows insertion order and
// strictly increasing ratings degrade it to a list of height n. Insert and
// Search descend iteratively, so a skewed tree costs time but not stack.
//
// Root exposes a read-only view of the shape for rendering.
package ratingtree
