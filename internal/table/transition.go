package table

import "time"

// TransitionDelay is how long content stays faded out before a deferred
// change is applied.
const TransitionDelay = 200 * time.Millisecond

// Phase is the state of the fade transition machine.
type Phase int

const (
	Idle Phase = iota
	Transitioning
)

func (p Phase) String() string {
	if p == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// Change is a deferred state update applied when a transition completes.
type Change interface {
	Apply(s State) State
}

// Transition tracks the single pending deferred change. Seq increases with
// every Begin so completions for superseded transitions can be recognised.
type Transition struct {
	Phase   Phase
	Seq     int
	Pending Change
}

// pageChange moves to a page index.
type pageChange struct {
	index int
}

func (c pageChange) Apply(s State) State {
	s.PageIndex = c.index
	return s
}

// sortChange replaces the sort descriptor and returns to the first page.
type sortChange struct {
	sorting []SortKey
}

func (c sortChange) Apply(s State) State {
	s.Sorting = c.sorting
	s.PageIndex = 0
	return s
}

// Begin fades content out and records change as the pending update,
// replacing any transition already in flight. It returns the sequence the
// completion must carry.
func Begin(s State, change Change) (State, int) {
	s.Fade = false
	s.Transition = Transition{
		Phase:   Transitioning,
		Seq:     s.Transition.Seq + 1,
		Pending: change,
	}
	return s, s.Transition.Seq
}

// BeginFade starts a fade-out/fade-in pulse. A change already pending is
// carried over and applies when the pulse completes.
func BeginFade(s State) (State, int) {
	var pending Change
	if s.Transition.Phase == Transitioning {
		pending = s.Transition.Pending
	}
	return Begin(s, pending)
}

// BeginSort schedules a sort descriptor replacement.
func BeginSort(s State, sorting []SortKey) (State, int) {
	sorting = append([]SortKey(nil), sorting...)
	return Begin(s, sortChange{sorting: sorting})
}

// BeginPage schedules a move to page index. It reports false, leaving s
// untouched, when index is the displayed page or outside [0, pageCount).
// The displayed page is PageIndex clamped into range.
func BeginPage(s State, index, pageCount int) (State, int, bool) {
	if index == ClampPage(s, pageCount).PageIndex || index < 0 || index >= pageCount {
		return s, 0, false
	}
	next, seq := Begin(s, pageChange{index: index})
	return next, seq, true
}

// Complete finishes the transition identified by seq: the pending change is
// applied and content fades back in. Completions for superseded transitions
// are ignored and report false.
func Complete(s State, seq int) (State, bool) {
	if s.Transition.Phase != Transitioning || seq != s.Transition.Seq {
		return s, false
	}
	if s.Transition.Pending != nil {
		s = s.Transition.Pending.Apply(s)
	}
	s.Fade = true
	s.Transition = Transition{Phase: Idle, Seq: s.Transition.Seq}
	return s, true
}

// Mount fades content in on first display. It is a no-op once any
// transition has started.
func Mount(s State) State {
	if s.Transition.Phase == Idle {
		s.Fade = true
	}
	return s
}
