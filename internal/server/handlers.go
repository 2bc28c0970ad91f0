package server

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/document"
	"github.com/goliatone/go-formwizard/pkg/history"
	"github.com/goliatone/go-formwizard/pkg/navigation"
	"github.com/goliatone/go-formwizard/pkg/render"
)

// handleForm loads the form on a fresh session. Addresses with parameters are
// redirected to the bare path so a reload never lands mid-form.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.RawQuery != "" || r.URL.ForceQuery {
		http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
		return
	}

	// A load starts the form over, so any session the browser still carries
	// is dropped with its answers.
	if old, ok := s.sessions.lookup(r); ok {
		s.sessions.remove(old.id)
		s.logger.Debug("session replaced on load", zap.String("session", old.id))
	}
	sess := s.sessions.create(s.catalog, s.policy, s.logger)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.logger.Debug("session created", zap.String("session", sess.id))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.history.reset()

	ctx := r.Context()
	if err := sess.ctrl.Load(ctx, r.URL.Path); err != nil {
		s.logger.Error("load form", zap.String("session", sess.id), zap.Error(err))
		http.Error(w, "form unavailable", statusFor(err))
		return
	}

	body, err := s.renderer.Render(ctx, s.catalog, render.RenderOptions{
		Policy: s.policy,
		Theme:  s.theme,
	})
	if err != nil {
		s.logger.Error("render form", zap.Error(err))
		http.Error(w, "form unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// handleNext copies the submitted values into the displayed page and
// advances. Leaving the last page completes the form.
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	var req nextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, View{Fault: fmt.Sprintf("decode request: %v", err)})
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	defer sess.mu.Unlock()

	ctx := r.Context()
	if sess.ctrl.Index() == 0 {
		writeJSON(w, statusFor(navigation.ErrNotLoaded), View{Fault: navigation.ErrNotLoaded.Error()})
		return
	}
	if !sess.ctrl.ErrorScreen() {
		pageID := document.PageID(sess.ctrl.Index())
		for label, value := range req.Values {
			if err := sess.doc.SetValue(pageID, label, value); err != nil {
				writeJSON(w, http.StatusBadRequest, View{Fault: err.Error()})
				return
			}
		}
	}

	fieldErr, err := sess.ctrl.Advance(ctx)
	view := viewOf(sess)
	switch {
	case catalog.IsOutOfRange(err):
		view.Complete = true
		view.Answers = sess.ctrl.Answers()
		s.logger.Info("form completed", zap.String("session", sess.id))
	case err != nil:
		s.fault(w, sess, view, err)
		return
	case fieldErr != nil:
		s.logger.Debug("page rejected", zap.String("session", sess.id), zap.String("field", fieldErr.Label))
	}
	writeJSON(w, http.StatusOK, view)
}

// handlePopState restores the page named by a history entry.
func (s *Server) handlePopState(w http.ResponseWriter, r *http.Request) {
	var req popStateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, View{Fault: fmt.Sprintf("decode request: %v", err)})
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	defer sess.mu.Unlock()

	event := history.PopEvent{State: []byte(req.State), URL: r.Header.Get("Referer")}
	if err := sess.ctrl.Restore(r.Context(), event); err != nil {
		s.fault(w, sess, viewOf(sess), err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

// handleInput applies one keystroke and returns the value the field keeps.
func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, inputResponse{Fault: fmt.Sprintf("decode request: %v", err)})
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	defer sess.mu.Unlock()

	accepted, _, err := sess.ctrl.Input(r.Context(), req.Label, req.Value)
	if err != nil {
		s.logger.Warn("input rejected", zap.String("session", sess.id), zap.String("label", req.Label), zap.Error(err))
		writeJSON(w, statusFor(err), inputResponse{Value: req.Value, Fault: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, inputResponse{Value: accepted, Warning: pendingWarning(sess)})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.openapi)
}

// session resolves and locks the caller's session. When it returns false a
// response has already been written.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session, bool) {
	sess, ok := s.sessions.lookup(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, View{Fault: "session not found, reload " + FormPath})
		return nil, false
	}
	sess.mu.Lock()
	s.sessions.touch(sess)
	sess.history.reset()
	return sess, true
}

func (s *Server) fault(w http.ResponseWriter, sess *session, view View, err error) {
	s.logger.Warn("transition dropped", zap.String("session", sess.id), zap.Error(err))
	view.Fault = err.Error()
	writeJSON(w, statusFor(err), view)
}
