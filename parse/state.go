package parse

import "github.com/edwingeng/deque"

// Handler is called with the text consumed by an Exec target and the
// context value supplied when the Exec parser was built. The result is
// folded into Result.ActionsOK; it never changes whether a parse matched.
type Handler func(text string, ctx any) bool

type action struct {
	handler Handler
	text    string
	ctx     any
}

// State is the mutable side of a single parse: the input, the read
// cursor, the consumed output and the queue of deferred actions.
// Parsers never keep state of their own, so one tree can serve many
// States.
type State struct {
	input   string
	pos     int
	output  []byte
	present bool
	actions deque.Deque
}

// Snapshot records the lengths of a State's logs. Restoring truncates
// back to them, so snapshots must be restored in LIFO order.
type Snapshot struct {
	pos     int
	output  int
	present bool
	actions int
}

// NewState returns a State positioned at the start of input.
func NewState(input string) *State {
	return &State{
		input:   input,
		actions: deque.NewDeque(),
	}
}

// Read returns the character under the cursor without advancing.
// The second result is false at end of input.
func (s *State) Read() (byte, bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	return s.input[s.pos], true
}

// Advance appends c to the output and moves the cursor one character on.
func (s *State) Advance(c byte) {
	s.output = append(s.output, c)
	s.present = true
	s.pos++
}

// Mark records that something matched even if nothing was consumed.
func (s *State) Mark() {
	s.present = true
}

// Pos returns the cursor offset.
func (s *State) Pos() int {
	return s.pos
}

// Finished reports whether the cursor is at the end of the input.
func (s *State) Finished() bool {
	return s.pos == len(s.input)
}

// Output returns the text consumed so far. The second result is false
// when no parser has matched yet, as opposed to matching nothing.
func (s *State) Output() (string, bool) {
	return string(s.output), s.present
}

// Pending returns the number of queued deferred actions.
func (s *State) Pending() int {
	return s.actions.Len()
}

// Snapshot records the current cursor, output and action queue so that
// Restore can return to them.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		pos:     s.pos,
		output:  len(s.output),
		present: s.present,
		actions: s.actions.Len(),
	}
}

// Restore rewinds the cursor, output and action queue to snap.
func (s *State) Restore(snap Snapshot) {
	s.pos = snap.pos
	s.rollback(snap)
}

// rollback truncates output and actions to snap but leaves the cursor.
func (s *State) rollback(snap Snapshot) {
	s.output = s.output[:snap.output]
	s.present = snap.present
	for s.actions.Len() > snap.actions {
		s.actions.PopBack()
	}
}

// since returns the output appended after snap was taken.
func (s *State) since(snap Snapshot) string {
	return string(s.output[snap.output:])
}

// Register queues a deferred action.
func (s *State) Register(h Handler, text string, ctx any) {
	s.actions.PushBack(action{handler: h, text: text, ctx: ctx})
}

// Drain runs every queued action once, in registration order, and
// empties the queue. It keeps going after a handler reports false; the
// result is the logical AND of all handler results.
func (s *State) Drain() bool {
	ok := true
	for !s.actions.Empty() {
		a := s.actions.PopFront().(action)
		if a.handler == nil {
			continue
		}
		if !a.handler(a.text, a.ctx) {
			ok = false
		}
	}
	return ok
}
