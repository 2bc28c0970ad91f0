package history

import "sync"

// History is the subset of the browser history API the controller drives.
type History interface {
	Push(state State, address string) error
	Replace(state State, address string) error
}

// Entry is one slot of the history stack. State holds the serialised payload
// exactly as pushed.
type Entry struct {
	State []byte
	URL   string
}

// PopEvent is delivered when the user moves back or forward.
type PopEvent struct {
	State []byte
	URL   string
}

// Page decodes the page index carried by the event.
func (e PopEvent) Page() (int, error) {
	state, err := DecodeState(e.State)
	if err != nil {
		return 0, err
	}
	return state.Page, nil
}

// Stack is an in-memory History with back/forward support. Pushing truncates
// any forward entries, as browsers do.
type Stack struct {
	mu      sync.Mutex
	base    string
	entries []Entry
	cursor  int
}

var _ History = (*Stack)(nil)

// NewStack starts a history whose first entry points at base with no state.
func NewStack(base string) *Stack {
	return &Stack{
		base:    StripParams(base),
		entries: []Entry{{URL: base}},
	}
}

// Push appends a new entry after the current one.
func (s *Stack) Push(state State, address string) error {
	raw, err := EncodeState(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries[:s.cursor+1], Entry{State: raw, URL: s.resolve(address)})
	s.cursor = len(s.entries) - 1
	return nil
}

// Replace overwrites the current entry.
func (s *Stack) Replace(state State, address string) error {
	raw, err := EncodeState(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[s.cursor] = Entry{State: raw, URL: s.resolve(address)}
	return nil
}

// Back moves to the previous entry. ok is false at the start of history.
func (s *Stack) Back() (PopEvent, bool) {
	return s.Go(-1)
}

// Forward moves to the next entry. ok is false at the end of history.
func (s *Stack) Forward() (PopEvent, bool) {
	return s.Go(1)
}

// Go moves delta entries, returning the event a browser would dispatch.
func (s *Stack) Go(delta int) (PopEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.cursor + delta
	if delta == 0 || target < 0 || target >= len(s.entries) {
		return PopEvent{}, false
	}
	s.cursor = target
	entry := s.entries[target]
	return PopEvent{State: append([]byte(nil), entry.State...), URL: entry.URL}, true
}

// Current returns the active entry.
func (s *Stack) Current() Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.entries[s.cursor]
	entry.State = append([]byte(nil), entry.State...)
	return entry
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// CanGoBack reports whether Back would move.
func (s *Stack) CanGoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor > 0
}

// resolve turns a relative "?query" address into a full URL on the base path.
func (s *Stack) resolve(address string) string {
	if len(address) > 0 && address[0] == '?' {
		return s.base + address
	}
	return address
}
