package tui

import (
	"fmt"

	"github.com/handiism/playlist-lab/internal/command"
	"github.com/handiism/playlist-lab/internal/ratingtree"
)

// maxTreeLines caps the tree view; deeper trees end with an ellipsis.
const maxTreeLines = 15

type treeLine struct {
	node   *ratingtree.Node
	prefix string
	branch string
	side   string
}

// renderTree draws the rating tree as indented text, left child first:
//
//	5 [A]
//	├─L 3 [B, D]
//	└─R 8 [C]
//
// It walks iteratively and stops after limit lines.
func renderTree(root *ratingtree.Node, limit int) []string {
	if root == nil {
		return nil
	}

	var lines []string
	stack := []treeLine{{node: root}}
	for len(stack) > 0 {
		if len(lines) == limit {
			lines = append(lines, "…")
			break
		}

		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lines = append(lines, fmt.Sprintf("%s%s%s%d %s",
			l.prefix, l.branch, l.side, l.node.Rating(), command.FormatList(l.node.Songs())))

		childPrefix := l.prefix
		switch l.branch {
		case "├─":
			childPrefix += "│  "
		case "└─":
			childPrefix += "   "
		}

		left, right := l.node.Left(), l.node.Right()
		// Push right first so left is drawn first.
		if right != nil {
			stack = append(stack, treeLine{node: right, prefix: childPrefix, branch: "└─", side: "R "})
		}
		if left != nil {
			branch := "└─"
			if right != nil {
				branch = "├─"
			}
			stack = append(stack, treeLine{node: left, prefix: childPrefix, branch: branch, side: "L "})
		}
	}
	return lines
}
