// Package session holds the per-browser navigation and authoring state.
// Everything here lives in memory only and disappears with the process.
package session

import (
	"sync"

	"github.com/google/uuid"

	"mzansimarket/internal/domain"
)

// View is a top-level view of the storefront.
type View string

const (
	ViewMarket    View = "market"
	ViewDashboard View = "dashboard"
)

// PlaceholderUser is the stub identity set by the login toggle.
const PlaceholderUser = "SME Owner"

// GeneratingPlaceholder shows in the description field while a generation
// call is outstanding.
const GeneratingPlaceholder = "Generating with AI..."

// Draft is the authoring form state. The token identifies the current
// incarnation of the form: rotating it (on reset) orphans any in-flight
// generation result.
type Draft struct {
	Name        string
	Price       string
	Description string
	Category    string
	ImageURL    string // data URI preview of the uploaded image
	ImageData   []byte
	ImageMime   string
	Generating  bool
	Err         string

	token string
}

// Session is one browser session's state machine. All transitions are
// serialized by the session's own mutex; there is no shared state between
// sessions.
type Session struct {
	mu sync.Mutex

	id       string
	loggedIn bool
	user     *domain.User
	view     View
	selected *domain.Product
	cartOpen bool
	draft    Draft
}

func newSession(id string) *Session {
	return &Session{
		id:    id,
		view:  ViewMarket,
		draft: Draft{token: uuid.NewString()},
	}
}

func (s *Session) ID() string { return s.id }

// Login sets the placeholder identity and lands on the dashboard with any
// detail overlay dismissed.
func (s *Session) Login() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
	s.user = &domain.User{Name: PlaceholderUser}
	s.view = ViewDashboard
	s.selected = nil
}

// Logout clears the identity and always returns to the market view.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	s.user = nil
	s.view = ViewMarket
	s.selected = nil
}

// NavigateTo picks a top-level view; choosing one always dismisses the
// product detail overlay.
func (s *Session) NavigateTo(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
	s.selected = nil
}

// SelectProduct turns the detail overlay on regardless of the current view.
func (s *Session) SelectProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &p
}

// Back dismisses the detail overlay, falling back to whichever top-level
// view was active.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

func (s *Session) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = true
}

func (s *Session) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = false
}

// State is a render-time copy of the session.
type State struct {
	LoggedIn bool
	User     *domain.User
	View     View
	Selected *domain.Product
	CartOpen bool
	Draft    Draft
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		LoggedIn: s.loggedIn,
		User:     s.user,
		View:     s.view,
		Selected: s.selected,
		CartOpen: s.cartOpen,
		Draft:    s.draft,
	}
}

// UserName returns the logged-in user's name, or "" when logged out.
func (s *Session) UserName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Name
}

// UpdateDraft merges submitted form fields into the draft. Empty image data
// keeps whatever image the draft already holds, so a re-submitted form does
// not lose a previous upload.
func (s *Session) UpdateDraft(name, price, description, category string, imageURL string, imageData []byte, imageMime string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Name = name
	s.draft.Price = price
	s.draft.Description = description
	s.draft.Category = category
	if len(imageData) > 0 {
		s.draft.ImageURL = imageURL
		s.draft.ImageData = imageData
		s.draft.ImageMime = imageMime
	}
	s.draft.Err = ""
}

// SetDraftErr records an inline form error.
func (s *Session) SetDraftErr(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Err = msg
}

// BeginGeneration marks the draft as generating and returns the request
// token plus the inputs for the call. The description shows a placeholder
// until the result lands.
func (s *Session) BeginGeneration() (token, name string, imageData []byte, imageMime string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Generating = true
	s.draft.Description = GeneratingPlaceholder
	s.draft.Err = ""
	return s.draft.token, s.draft.Name, s.draft.ImageData, s.draft.ImageMime
}

// ApplyGeneration lands a generation result on the draft, but only if the
// form has not been reset since the call started: a stale token means the
// result is discarded. Reports whether the result was applied.
func (s *Session) ApplyGeneration(token, description, errMsg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.draft.token {
		return false
	}
	s.draft.Generating = false
	if errMsg != "" {
		s.draft.Description = ""
		s.draft.Err = errMsg
		return true
	}
	s.draft.Description = description
	s.draft.Err = ""
	return true
}

// ResetDraft clears the form and rotates the token so an outstanding
// generation result for the old form is dropped on arrival.
func (s *Session) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = Draft{token: uuid.NewString()}
}

// Store maps sid cookies to sessions, creating on first sight.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for the sid, creating it when absent.
func (st *Store) Get(sid string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[sid]
	st.mu.RUnlock()
	if ok {
		return s
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[sid]; ok {
		return s
	}
	s = newSession(sid)
	st.sessions[sid] = s
	return s
}
