package sweep

import (
	"fmt"

	"github.com/go-sweep/sweep/point"
)

// StepType tags a single transition of the sweep.
type StepType uint8

const (
	// StepInit marks the start of a run.
	StepInit StepType = iota

	// StepInitQueueBegin marks the start of event-queue initialisation.
	StepInitQueueBegin

	// StepInsertEndpoint records the insertion of one segment's endpoints
	// into the event queue. Segment identifies the segment.
	StepInsertEndpoint

	// StepStatusInit records the creation of the empty status structure.
	StepStatusInit

	// StepPopEvent records the removal of the next event point from the
	// queue. Event holds the point; UofP the segments stored with it.
	StepPopEvent

	// StepComputeLCSets records the collection of L(p) and C(p) from the
	// status structure.
	StepComputeLCSets

	// StepComputeULCUnion records the union U(p) ∪ L(p) ∪ C(p); Union holds
	// it.
	StepComputeULCUnion

	// StepReportIntersection records one reported intersection; Intersection
	// indexes the report.
	StepReportIntersection

	// StepDeleteLC records the deletion of L(p) ∪ C(p) from the status
	// structure.
	StepDeleteLC

	// StepInsertUC records the insertion of U(p) ∪ C(p) into the status
	// structure.
	StepInsertUC

	// StepNeighborsNone records the neighbor lookup when U(p) ∪ C(p) is
	// empty: Left and Right are the neighbors of the event point itself.
	StepNeighborsNone

	// StepNeighborsBoth records the neighbor lookup when U(p) ∪ C(p) is
	// non-empty: LeftMost and RightMost bound the group through the event,
	// Left and Right are their outer neighbors.
	StepNeighborsBoth

	// StepFindEvent records a pairwise intersection test between the
	// adjacent segments Left and Right.
	StepFindEvent

	// StepInsertIntersectionEvent records the insertion of a discovered
	// intersection point into the event queue; Point holds it.
	StepInsertIntersectionEvent

	// StepMergeQueueAppend records one pairwise report entering the merge
	// pass; Intersection indexes it.
	StepMergeQueueAppend

	// StepMerge records the collapse of a multi-point pair into an overlap;
	// Pair, Points and Result describe it.
	StepMerge

	// StepEnd marks the end of a run.
	StepEnd
)

// String returns a human-readable representation of the StepType. It panics
// on an unsupported value.
func (t StepType) String() string {
	switch t {
	case StepInit:
		return "Init"
	case StepInitQueueBegin:
		return "InitQueueBegin"
	case StepInsertEndpoint:
		return "InsertEndpoint"
	case StepStatusInit:
		return "StatusInit"
	case StepPopEvent:
		return "PopEvent"
	case StepComputeLCSets:
		return "ComputeLCSets"
	case StepComputeULCUnion:
		return "ComputeULCUnion"
	case StepReportIntersection:
		return "ReportIntersection"
	case StepDeleteLC:
		return "DeleteLC"
	case StepInsertUC:
		return "InsertUC"
	case StepNeighborsNone:
		return "NeighborsNone"
	case StepNeighborsBoth:
		return "NeighborsBoth"
	case StepFindEvent:
		return "FindEvent"
	case StepInsertIntersectionEvent:
		return "InsertIntersectionEvent"
	case StepMergeQueueAppend:
		return "MergeQueueAppend"
	case StepMerge:
		return "Merge"
	case StepEnd:
		return "End"
	default:
		panic(fmt.Errorf("unsupported step type %d", uint8(t)))
	}
}

// EventSnapshot is one event-queue entry captured in a step record.
type EventSnapshot struct {
	Point    point.Point
	Segments []SegmentIndex
}

// Step is one recorded transition of the sweep. Every step carries its
// monotone index, the current event point (nil before the first pop and
// during the merge pass), and snapshots of the event queue and the status
// structure. The remaining fields are meaningful only for the step types
// documented on the [StepType] constants; absent segment fields hold
// [NoSegment].
type Step struct {
	Type  StepType
	Step  int
	Event *point.Point

	Queue  []EventSnapshot
	Status []SegmentIndex

	UofP []SegmentIndex
	CofP []SegmentIndex
	LofP []SegmentIndex

	Union []SegmentIndex

	Segment      SegmentIndex
	Intersection int

	Left      SegmentIndex
	Right     SegmentIndex
	LeftMost  SegmentIndex
	RightMost SegmentIndex

	Point *point.Point

	Pair   [2]SegmentIndex
	Points []point.Point
	Result int
}

// String returns a short human-readable representation of the step.
func (s Step) String() string {
	if s.Event != nil {
		return fmt.Sprintf("step %d: %s at %s", s.Step, s.Type, s.Event)
	}
	return fmt.Sprintf("step %d: %s", s.Step, s.Type)
}

// stepLog carries the monotone step counter through a run and, when capture
// is set, accumulates the step records. The counter always advances so that
// the step numbers stamped onto intersections are identical whether or not
// recording is enabled: recording must not change observable behaviour.
type stepLog struct {
	capture bool
	count   int
	steps   []Step
}

// record advances the step counter and returns the step's index. When
// capturing, fill is invoked to populate the record (snapshots are built by
// the caller inside fill, so the fast path never pays for them).
func (r *stepLog) record(typ StepType, fill func(*Step)) int {
	idx := r.count
	r.count++
	if !r.capture {
		return idx
	}
	s := Step{
		Type:         typ,
		Step:         idx,
		Segment:      NoSegment,
		Intersection: -1,
		Left:         NoSegment,
		Right:        NoSegment,
		LeftMost:     NoSegment,
		RightMost:    NoSegment,
		Result:       -1,
	}
	if fill != nil {
		fill(&s)
	}
	r.steps = append(r.steps, s)
	return idx
}
