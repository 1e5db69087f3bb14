//go:build debug

package sweep

import (
	"fmt"
	"log"
	"os"

	"github.com/go-sweep/sweep/point"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[sweep DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages in debug builds.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

// verifyStructure re-verifies the tree's structural invariants (parent
// links, heights, acyclicity) after a mutation. A violation is a bug in the
// tree mechanics and panics with a dump of the tree.
func (t *statusTree) verifyStructure() {
	t.verifyNode(t.root, nil)
}

func (t *statusTree) verifyNode(n, parent *statusNode) {
	if n == nil {
		return
	}
	if n.parent != parent {
		panic(fmt.Errorf("status tree corrupt: bad parent link at segment %d\n%s", n.seg, t))
	}
	if n == n.left || n == n.right {
		panic(fmt.Errorf("status tree corrupt: cycle at segment %d\n%s", n.seg, t))
	}
	if want := 1 + max(nodeHeight(n.left), nodeHeight(n.right)); n.height != want {
		panic(fmt.Errorf("status tree corrupt: height %d, want %d at segment %d\n%s", n.height, want, n.seg, t))
	}
	t.verifyNode(n.left, n)
	t.verifyNode(n.right, n)
}

// verifyOrder checks that the in-order traversal agrees with the comparator
// at the given event. Valid only when every stored position is current, i.e.
// after the insertion phase of an event has completed.
func (t *statusTree) verifyOrder(event point.Point) {
	prev := NoSegment
	for n := minNode(t.root); n != nil; n = successor(n) {
		if prev != NoSegment && t.compare(prev, n.seg, event, true) >= 0 {
			panic(fmt.Errorf("status tree corrupt: segments %d and %d out of order at %s\n%s", prev, n.seg, event, t))
		}
		prev = n.seg
	}
}
