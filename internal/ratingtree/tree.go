package ratingtree

const nilIndex = -1

type bucket struct {
	rating int
	songs  []string
	left   int
	right  int
}

// Tree is an unbalanced BST keyed by rating.
//
// For every bucket, ratings in its left subtree are smaller and ratings
// in its right subtree are larger. Equal ratings share one bucket.
// A Tree is not safe for concurrent use.
type Tree struct {
	buckets []bucket
	root    int
	size    int
}

// New creates an empty Tree.
func New() *Tree {
	return &Tree{root: nilIndex}
}

// Insert adds name under rating. An existing bucket for the rating is
// appended to; otherwise a new leaf is attached where the descent ends.
func (t *Tree) Insert(rating int, name string) {
	t.size++

	if t.root == nilIndex {
		t.root = t.newBucket(rating, name)
		return
	}

	i := t.root
	for {
		b := &t.buckets[i]
		switch {
		case rating == b.rating:
			b.songs = append(b.songs, name)
			return
		case rating < b.rating:
			if b.left == nilIndex {
				idx := t.newBucket(rating, name)
				t.buckets[i].left = idx
				return
			}
			i = b.left
		default:
			if b.right == nilIndex {
				idx := t.newBucket(rating, name)
				t.buckets[i].right = idx
				return
			}
			i = b.right
		}
	}
}

// newBucket appends a leaf and returns its index. It may reallocate
// t.buckets, so callers must not hold bucket pointers across it.
func (t *Tree) newBucket(rating int, name string) int {
	t.buckets = append(t.buckets, bucket{
		rating: rating,
		songs:  []string{name},
		left:   nilIndex,
		right:  nilIndex,
	})
	return len(t.buckets) - 1
}

// Search returns the songs rated exactly rating, in insertion order.
// The result is a copy and is empty, never nil, when the rating is absent.
func (t *Tree) Search(rating int) []string {
	i := t.find(rating)
	if i == nilIndex {
		return []string{}
	}
	songs := t.buckets[i].songs
	out := make([]string, len(songs))
	copy(out, songs)
	return out
}

// Contains reports whether any song has the given rating.
func (t *Tree) Contains(rating int) bool {
	return t.find(rating) != nilIndex
}

func (t *Tree) find(rating int) int {
	i := t.root
	for i != nilIndex {
		b := &t.buckets[i]
		switch {
		case rating == b.rating:
			return i
		case rating < b.rating:
			i = b.left
		default:
			i = b.right
		}
	}
	return nilIndex
}

// Len returns the number of inserted names, counting duplicates.
func (t *Tree) Len() int {
	return t.size
}

// Buckets returns the number of distinct ratings.
func (t *Tree) Buckets() int {
	return len(t.buckets)
}

// Height returns the number of levels, 0 for an empty tree.
func (t *Tree) Height() int {
	if t.root == nilIndex {
		return 0
	}

	height := 0
	level := []int{t.root}
	for len(level) > 0 {
		height++
		var next []int
		for _, i := range level {
			if l := t.buckets[i].left; l != nilIndex {
				next = append(next, l)
			}
			if r := t.buckets[i].right; r != nilIndex {
				next = append(next, r)
			}
		}
		level = next
	}
	return height
}

// InOrder calls fn for every bucket in ascending rating order.
func (t *Tree) InOrder(fn func(rating int, songs []string)) {
	var stack []int
	i := t.root
	for i != nilIndex || len(stack) > 0 {
		for i != nilIndex {
			stack = append(stack, i)
			i = t.buckets[i].left
		}
		i = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b := t.buckets[i]
		fn(b.rating, append([]string(nil), b.songs...))
		i = b.right
	}
}
