package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/document"
	"github.com/goliatone/go-formwizard/pkg/history"
	"github.com/goliatone/go-formwizard/pkg/navigation"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "formwizard_session"

// session is one browser's form state. mu serialises requests so the
// controller only ever sees one transition at a time.
type session struct {
	mu       sync.Mutex
	id       string
	doc      *document.Memory
	history  *recorder
	ctrl     *navigation.Controller
	lastSeen time.Time
}

// recorder captures the history call made during a request so the runtime
// can replay it against the real browser history.
type recorder struct {
	op *historyOp
}

type historyOp struct {
	state   history.State
	address string
	push    bool
}

var _ history.History = (*recorder)(nil)

func (r *recorder) Push(state history.State, address string) error {
	r.op = &historyOp{state: state, address: address, push: true}
	return nil
}

func (r *recorder) Replace(state history.State, address string) error {
	r.op = &historyOp{state: state, address: address}
	return nil
}

func (r *recorder) reset() {
	r.op = nil
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	now      func() time.Time
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

func (s *sessionStore) create(cat *catalog.Catalog, policy validation.Policy, logger *zap.Logger) *session {
	id := uuid.NewString()
	doc := document.NewMemory(cat.Pages())
	hist := &recorder{}
	sess := &session{
		id:      id,
		doc:     doc,
		history: hist,
		ctrl: navigation.New(cat, doc, hist,
			navigation.WithLogger(logger.With(zap.String("session", id))),
			navigation.WithPolicy(policy),
		),
		lastSeen: s.now(),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return sess
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	return sess, ok
}

func (s *sessionStore) lookup(r *http.Request) (*session, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return s.get(cookie.Value)
}

func (s *sessionStore) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *sessionStore) touch(sess *session) {
	sess.lastSeen = s.now()
}

// sweep drops sessions idle for longer than ttl and returns how many went.
func (s *sessionStore) sweep(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *sessionStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
