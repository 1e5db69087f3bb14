package sweep

import (
	"cmp"
	"fmt"
	"math"
	"strings"

	"github.com/go-sweep/sweep/numeric"
	"github.com/go-sweep/sweep/options"
	"github.com/go-sweep/sweep/point"
	"github.com/go-sweep/sweep/segment"
)

// statusNode is a node of the status tree. Leaves are represented uniformly
// as nil children. Parent pointers support in-order cursor traversal without
// a stack; they are maintained by every mutation.
type statusNode struct {
	seg    SegmentIndex
	parent *statusNode
	left   *statusNode
	right  *statusNode
	height int
}

// statusTree is the sweep-line status structure: an AVL tree over segment
// indices, ordered left to right as the segments cross the horizontal sweep
// line through the current event point.
//
// Keys are not stored. They are recomputed on demand from (segment, event):
// the primary key is the x-coordinate at which the segment crosses the sweep
// line at the event's y, with ties broken by the slope order just below the
// line and finally by index. Because the key depends on the current event,
// the driver must delete every segment through an event point before
// re-inserting the survivors at that event; the tree itself never holds two
// concurrently valid keys that contradict the comparator.
//
// Deletions search with the slope tie reversed: segments through the event
// point were last positioned at an event above it, where the left-to-right
// order of segments crossing at the event is the mirror of the order below.
type statusTree struct {
	root     *statusNode
	segments []segment.Segment
	epsilon  float64
}

// newStatusTree creates an empty status structure over the given read-only
// segment slice.
func newStatusTree(segments []segment.Segment, opts ...options.GeometryOptionsFunc) *statusTree {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return &statusTree{
		segments: segments,
		epsilon:  geoOpts.Epsilon,
	}
}

// xAtEvent returns the signed x-coordinate at which segment s crosses the
// horizontal sweep line through the event. For a horizontal segment the
// sweep line lies along the segment and the crossing x is not unique; the
// event's x clamped into the segment's x-range keeps its position
// well-defined until its right (lower) endpoint pops it.
func (t *statusTree) xAtEvent(s SegmentIndex, event point.Point) float64 {
	seg := t.segments[s]
	if seg.IsHorizontal() {
		return math.Min(math.Max(event.X(), seg.Upper().X()), seg.Lower().X())
	}
	meet := seg.Line().Intersection(point.HorizontalLine(event.Y()))
	p, ok := meet.Cartesian()
	if !ok {
		panic(fmt.Errorf("segment %d does not cross the sweep line at %s", s, event))
	}
	return p.X()
}

// slopeOrderKey orders segments that cross the sweep line at a common point
// by where they continue just below it: a segment leaning left sorts before
// a vertical one, which sorts before a segment leaning right, and a
// horizontal segment sorts after everything else through the point.
func (t *statusTree) slopeOrderKey(s SegmentIndex) float64 {
	seg := t.segments[s]
	if seg.IsHorizontal() {
		return math.Inf(1)
	}
	dx := seg.Lower().X() - seg.Upper().X()
	dy := seg.Lower().Y() - seg.Upper().Y()
	return -dx / dy
}

// compare orders segments a and b at the given event. belowOrder selects the
// direction of the slope tie-break: true gives the left-to-right order just
// below the sweep line (used when inserting), false the order just above it
// (used when deleting, where the stored position of a segment through the
// event predates the event). The index tie-break is never reversed: two
// segments with equal x and equal slope are collinear and their order cannot
// flip.
func (t *statusTree) compare(a, b SegmentIndex, event point.Point, belowOrder bool) int {
	if a == b {
		return 0
	}
	if c := numeric.FloatCompare(t.xAtEvent(a, event), t.xAtEvent(b, event), t.epsilon); c != 0 {
		return c
	}
	c := numeric.FloatCompare(t.slopeOrderKey(a), t.slopeOrderKey(b), t.epsilon)
	if !belowOrder {
		c = -c
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

// Insert adds segment s to the tree using the current event as the sweep
// position. Inserting a segment that is already present is a no-op.
func (t *statusTree) Insert(s SegmentIndex, event point.Point) {
	t.root = t.insert(t.root, nil, s, event)
	if t.root != nil {
		t.root.parent = nil
	}
	t.verifyStructure()
}

func (t *statusTree) insert(n, parent *statusNode, s SegmentIndex, event point.Point) *statusNode {
	if n == nil {
		return &statusNode{seg: s, parent: parent, height: 1}
	}
	switch c := t.compare(s, n.seg, event, true); {
	case c < 0:
		n.left = t.insert(n.left, n, s, event)
	case c > 0:
		n.right = t.insert(n.right, n, s, event)
	default:
		return n
	}
	return t.rebalance(n)
}

// Delete removes segment s from the tree using the current event as the
// sweep position. Deleting a segment that is not present is a no-op.
func (t *statusTree) Delete(s SegmentIndex, event point.Point) {
	t.root = t.delete(t.root, s, event)
	if t.root != nil {
		t.root.parent = nil
	}
	t.verifyStructure()
}

func (t *statusTree) delete(n *statusNode, s SegmentIndex, event point.Point) *statusNode {
	if n == nil {
		return nil
	}
	switch c := t.compare(s, n.seg, event, false); {
	case c < 0:
		n.left = t.delete(n.left, s, event)
		if n.left != nil {
			n.left.parent = n
		}
	case c > 0:
		n.right = t.delete(n.right, s, event)
		if n.right != nil {
			n.right.parent = n
		}
	default:
		if n.left == nil {
			if n.right != nil {
				n.right.parent = n.parent
			}
			return n.right
		}
		if n.right == nil {
			n.left.parent = n.parent
			return n.left
		}
		// Two children: replace with the in-order successor, then delete the
		// successor from the right subtree.
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.seg = succ.seg
		n.right = t.delete(n.right, succ.seg, event)
		if n.right != nil {
			n.right.parent = n
		}
	}
	return t.rebalance(n)
}

// LeftOfEvent returns the greatest segment whose key is strictly less than
// the event's x. The boolean is false when no such segment exists.
func (t *statusTree) LeftOfEvent(event point.Point) (SegmentIndex, bool) {
	var best *statusNode
	for n := t.root; n != nil; {
		if numeric.FloatLessThan(t.xAtEvent(n.seg, event), event.X(), t.epsilon) {
			best = n
			n = n.right
		} else {
			n = n.left
		}
	}
	if best == nil {
		return NoSegment, false
	}
	return best.seg, true
}

// RightOfEvent returns the least segment whose key is strictly greater than
// the event's x. The boolean is false when no such segment exists.
func (t *statusTree) RightOfEvent(event point.Point) (SegmentIndex, bool) {
	var best *statusNode
	for n := t.root; n != nil; {
		if numeric.FloatGreaterThan(t.xAtEvent(n.seg, event), event.X(), t.epsilon) {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if best == nil {
		return NoSegment, false
	}
	return best.seg, true
}

// LeftMostThrough returns the leftmost segment of the contiguous group whose
// key equals the event's x, the segments currently through the event point.
func (t *statusTree) LeftMostThrough(event point.Point) (SegmentIndex, bool) {
	n := t.leftMostThroughNode(event)
	if n == nil {
		return NoSegment, false
	}
	return n.seg, true
}

// RightMostThrough returns the rightmost segment of the contiguous group
// whose key equals the event's x.
func (t *statusTree) RightMostThrough(event point.Point) (SegmentIndex, bool) {
	var best *statusNode
	for n := t.root; n != nil; {
		switch numeric.FloatCompare(t.xAtEvent(n.seg, event), event.X(), t.epsilon) {
		case -1:
			n = n.right
		case 1:
			n = n.left
		default:
			best = n
			n = n.right
		}
	}
	if best == nil {
		return NoSegment, false
	}
	return best.seg, true
}

func (t *statusTree) leftMostThroughNode(event point.Point) *statusNode {
	var best *statusNode
	for n := t.root; n != nil; {
		switch numeric.FloatCompare(t.xAtEvent(n.seg, event), event.X(), t.epsilon) {
		case -1:
			n = n.right
		case 1:
			n = n.left
		default:
			best = n
			n = n.left
		}
	}
	return best
}

// ContainingSegments returns, in left-to-right order, the contiguous group of
// segments whose key equals the event's x. Every segment in the tree
// straddles the sweep line, so key equality means the segment passes through
// the event point.
func (t *statusTree) ContainingSegments(event point.Point) []SegmentIndex {
	var out []SegmentIndex
	for n := t.leftMostThroughNode(event); n != nil; n = successor(n) {
		if numeric.FloatCompare(t.xAtEvent(n.seg, event), event.X(), t.epsilon) != 0 {
			break
		}
		out = append(out, n.seg)
	}
	return out
}

// InOrder returns every segment in the tree in left-to-right order.
func (t *statusTree) InOrder() []SegmentIndex {
	var out []SegmentIndex
	for n := minNode(t.root); n != nil; n = successor(n) {
		out = append(out, n.seg)
	}
	return out
}

// Len returns the number of segments in the tree.
func (t *statusTree) Len() int {
	count := 0
	for n := minNode(t.root); n != nil; n = successor(n) {
		count++
	}
	return count
}

// String renders the in-order contents with their segments, for debugging
// dumps.
func (t *statusTree) String() string {
	out := strings.Builder{}
	for i, s := range t.InOrder() {
		out.WriteString(fmt.Sprintf("status %d: segment %d %s\n", i, s, t.segments[s]))
	}
	return out.String()
}

// minNode returns the leftmost node of the subtree rooted at n.
func minNode(n *statusNode) *statusNode {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// successor returns the in-order successor of n via parent pointers.
func successor(n *statusNode) *statusNode {
	if n.right != nil {
		return minNode(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// predecessor returns the in-order predecessor of n via parent pointers.
func predecessor(n *statusNode) *statusNode {
	if n.left != nil {
		c := n.left
		for c.right != nil {
			c = c.right
		}
		return c
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

func nodeHeight(n *statusNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *statusNode) updateHeight() {
	n.height = 1 + max(nodeHeight(n.left), nodeHeight(n.right))
}

func nodeBalance(n *statusNode) int {
	if n == nil {
		return 0
	}
	return nodeHeight(n.left) - nodeHeight(n.right)
}

// rebalance restores the AVL height invariant at n after an insert or delete
// in one of its subtrees, and returns the new subtree root with parent links
// and heights restored.
func (t *statusTree) rebalance(n *statusNode) *statusNode {
	n.updateHeight()
	b := nodeBalance(n)
	if b > 1 {
		if nodeBalance(n.left) < 0 {
			n.left = leftRotate(n.left)
			n.left.parent = n
		}
		return rightRotate(n)
	}
	if b < -1 {
		if nodeBalance(n.right) > 0 {
			n.right = rightRotate(n.right)
			n.right.parent = n
		}
		return leftRotate(n)
	}
	return n
}

func rightRotate(y *statusNode) *statusNode {
	x := y.left
	t2 := x.right

	x.parent = y.parent
	x.right = y
	y.parent = x
	y.left = t2
	if t2 != nil {
		t2.parent = y
	}

	y.updateHeight()
	x.updateHeight()
	return x
}

func leftRotate(x *statusNode) *statusNode {
	y := x.right
	t2 := y.left

	y.parent = x.parent
	y.left = x
	x.parent = y
	x.right = t2
	if t2 != nil {
		t2.parent = x
	}

	x.updateHeight()
	y.updateHeight()
	return y
}
