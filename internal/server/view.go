package server

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formwizard/pkg/document"
	"github.com/goliatone/go-formwizard/pkg/navigation"
)

// View is what the runtime applies to the page after each transition.
type View struct {
	Page        int               `json:"page"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Address     string            `json:"address,omitempty"`
	Push        bool              `json:"push,omitempty"`
	Replace     bool              `json:"replace,omitempty"`
	Warning     *Warning          `json:"warning,omitempty"`
	ErrorScreen bool              `json:"error_screen,omitempty"`
	ErrorText   string            `json:"error_text,omitempty"`
	Complete    bool              `json:"complete,omitempty"`
	Answers     map[string]string `json:"answers,omitempty"`
	Fault       string            `json:"fault,omitempty"`
}

// Warning names the flagged field.
type Warning struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

type nextRequest struct {
	Values map[string]string `json:"values"`
}

type popStateRequest struct {
	State json.RawMessage `json:"state"`
}

type inputRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type inputResponse struct {
	Value   string   `json:"value"`
	Warning *Warning `json:"warning,omitempty"`
	Fault   string   `json:"fault,omitempty"`
}

func viewOf(sess *session) View {
	view := View{
		Page:        sess.ctrl.Index(),
		Title:       sess.doc.Text(document.IDTitle),
		Description: sess.doc.Text(document.IDDescription),
		ErrorScreen: sess.ctrl.ErrorScreen(),
		Warning:     pendingWarning(sess),
	}
	if view.ErrorScreen {
		view.ErrorText = sess.doc.Text(document.IDError)
	}
	if op := sess.history.op; op != nil {
		view.Address = op.address
		view.Push = op.push
		view.Replace = !op.push
	}
	return view
}

func pendingWarning(sess *session) *Warning {
	pending := sess.ctrl.Pending()
	if pending == nil {
		return nil
	}
	return &Warning{Label: pending.Label, Message: pending.Message}
}

// statusFor maps a transition fault to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, navigation.ErrTransitionInFlight), errors.Is(err, navigation.ErrNotLoaded):
		return http.StatusConflict
	case errors.Is(err, navigation.ErrMissingPage):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
