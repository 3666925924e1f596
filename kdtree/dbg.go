package kdtree

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geokit/dbg"
)

// DbgString dumps the tree one node per line, children indented below their
// parent. Each node gets a readable name so the same node can be spotted
// across dumps of a tree being built.
func (t *KdTree[T, V]) DbgString() string {
	if t.root == nil {
		return "Ø\n"
	}
	var sb strings.Builder
	t.root.dbgWrite(&sb, 0, "•")
	return sb.String()
}

func (n *node[T, V]) dbgWrite(sb *strings.Builder, depth int, side string) {
	if n == nil {
		return
	}
	fmt.Fprintf(sb, "%s%s %s %s %v → %v\n",
		strings.Repeat("  ", depth),
		side,
		aurora.Cyan(n.axis),
		dbg.Name(n),
		aurora.Bold(n.median),
		aurora.Green(n.value),
	)
	n.left.dbgWrite(sb, depth+1, "L")
	n.right.dbgWrite(sb, depth+1, "R")
}
