// Package app composes the studium terminal client: page navigation over
// the course catalog, OTP sign-in, and the persistent video session with
// its fullscreen and mini-player presentations.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alakhsir/studium/internal/auth"
	"github.com/alakhsir/studium/internal/catalog"
	"github.com/alakhsir/studium/internal/config"
	"github.com/alakhsir/studium/internal/notify"
	"github.com/alakhsir/studium/internal/progress"
	"github.com/alakhsir/studium/internal/session"
	"github.com/alakhsir/studium/internal/state"
	"github.com/alakhsir/studium/internal/surface"
)

// Option customizes the application model.
type Option func(*Model)

// WithNotifier sets the desktop notifier used for mini-player transitions.
func WithNotifier(n notify.Notifier) Option {
	return func(m *Model) { m.notifier = n }
}

// Model is the root bubbletea model.
type Model struct {
	cfg      *config.Config
	store    catalog.Store
	provider auth.Provider
	states   state.Interface
	tracker  *progress.Tracker

	controller *session.Controller
	transport  *surface.Transport
	router     *Router
	sub        *session.Subscription

	identity     *auth.Identity
	accessToken  string
	refreshToken string

	width, height int
	errorMsg      string

	login    loginModel
	batches  batchesModel
	detail   detailModel
	chapters chaptersModel
	contents contentsModel
	player   playerModel
	quizPage quizModel

	// pendingRefresh defers catalog loading until the token refresh
	// settles, so the first request does not race a stale session.
	pendingRefresh bool

	notifier notify.Notifier
}

// New creates the application model. The router passed in must be the same
// NavStack instance the controller was constructed with.
func New(
	cfg *config.Config,
	store catalog.Store,
	provider auth.Provider,
	states state.Interface,
	controller *session.Controller,
	transport *surface.Transport,
	router *Router,
	opts ...Option,
) (Model, error) {
	pb := cfg.GetPlaybackConfig()

	m := Model{
		cfg:        cfg,
		store:      store,
		provider:   provider,
		states:     states,
		tracker:    progress.NewTracker(states, pb.ResumeThresholdDuration()),
		controller: controller,
		transport:  transport,
		router:     router,
		sub:        controller.Subscribe(),
		login:      newLoginModel(),
		batches:    newBatchesModel(),
		detail:     newDetailModel(),
		chapters:   newChaptersModel(),
		contents:   newContentsModel(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	// Restore persisted volume before any playback starts.
	if vol, err := states.GetVolume(); err == nil && vol != nil {
		transport.SetVolume(vol.Volume)
		if vol.Muted != transport.Muted() {
			transport.ToggleMute()
		}
	}

	// Restore the signed-in session. An expired access token with a live
	// refresh token still lands on the catalog; the refresh runs at Init.
	st, err := states.GetAuth()
	if err != nil {
		return Model{}, err
	}
	switch {
	case st == nil:
		// Signed out.
	case st.Expired() && st.RefreshToken == "":
		// Session fully dead, back to login.
	default:
		m.accessToken = st.AccessToken
		m.refreshToken = st.RefreshToken
		if id, err := auth.ParseIdentity(st.AccessToken); err == nil {
			m.identity = id
		} else {
			m.identity = &auth.Identity{UserID: st.UserID, Email: st.Email}
		}
		m.pendingRefresh = st.Expired()
		router.Replace(PageBatches)
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.WatchModeChanges()}

	if m.pendingRefresh {
		cmds = append(cmds, refreshSessionCmd(m.provider, m.refreshToken))
	} else if m.SignedIn() {
		cmds = append(cmds, m.loadBatchesCmd())
		if cmd := m.restoreNavigation(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return tea.Batch(cmds...)
}

// SignedIn reports whether a user session is active.
func (m Model) SignedIn() bool {
	return m.identity != nil
}

func (m Model) userID() string {
	if m.identity == nil {
		return ""
	}
	return m.identity.UserID
}

// page returns the page currently on top of the router.
func (m Model) page() Page {
	return m.router.Current()
}

// applySession persists and adopts a fresh auth session.
func (m *Model) applySession(sess auth.Session) {
	m.accessToken = sess.AccessToken
	m.refreshToken = sess.RefreshToken
	m.identity = &sess.Identity
	_ = m.states.SaveAuth(state.AuthState{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		UserID:       sess.Identity.UserID,
		Email:        sess.Identity.Email,
		ExpiresAt:    sess.ExpiresAt,
	})
}

// clearSession drops credentials locally and returns to the login page.
func (m *Model) clearSession() {
	m.identity = nil
	m.accessToken = ""
	m.refreshToken = ""
	_ = m.states.ClearAuth()
	m.controller.Close()
	m.router.Replace(PageLogin)
	m.login = newLoginModel()
}
