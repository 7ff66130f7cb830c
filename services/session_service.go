package services

import (
	"context"
	"fmt"
	"sync"

	"redhatters.link/configs"
	"redhatters.link/configs/configslog"
	"redhatters.link/models"
	"redhatters.link/pkg/clock"
	"redhatters.link/pkg/navigate"
	"redhatters.link/pkg/notify"
	"redhatters.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Demo auth rules: a seeded credential match wins outright; otherwise any
// sufficiently long pair is accepted. This is a demo stand-in, not real
// authentication.
const (
	minUsernameLen = 3
	minPasswordLen = 6
)

const (
	homePage  = "index.html"
	loginPage = "login.html"
)

// ISessionService is the demo session manager: one session per browser
// profile, a 30 minute sliding inactivity window, and a warning before
// expiry.
type ISessionService interface {
	Login(ctx context.Context, profileID, username, password string) bool
	Logout(ctx context.Context, profileID string)
	IsLoggedIn(ctx context.Context, profileID string) bool
	CurrentSession(ctx context.Context, profileID string) (models.Session, bool)
	Username(ctx context.Context, profileID string) string
	Touch(ctx context.Context, profileID string)
	CheckProtectedAccess(ctx context.Context, profileID, currentPage string)
	ClearDemoState(ctx context.Context, profileID string)
	NavigationState(ctx context.Context, profileID string) models.NavigationState
	Shutdown()
}

// SessionService implements ISessionService over the key-value store.
type SessionService struct {
	store     repositories.IKVStore
	creds     repositories.ICredentialRepository
	notifier  notify.Notifier
	navigator navigate.Navigator
	clock     clock.Clock

	mu     sync.Mutex
	timers map[string]*inactivityTimers
}

// inactivityTimers are the cancellable timers of one logged-in profile.
type inactivityTimers struct {
	warning clock.Timer
	logout  clock.Timer
}

// NewSessionService wires a SessionService with its collaborators.
func NewSessionService(
	store repositories.IKVStore,
	creds repositories.ICredentialRepository,
	notifier notify.Notifier,
	navigator navigate.Navigator,
	clk clock.Clock,
) ISessionService {
	return &SessionService{
		store:     store,
		creds:     creds,
		notifier:  notifier,
		navigator: navigator,
		clock:     clk,
		timers:    make(map[string]*inactivityTimers),
	}
}

// Login validates against the seeded demo credentials first; an unknown or
// mismatched pair still passes when it meets the length rule. Success
// persists the session and starts inactivity tracking.
func (s *SessionService) Login(ctx context.Context, profileID, username, password string) bool {
	accepted := false
	welcome := ""

	if username != "" && password != "" {
		if cred, err := s.creds.FindByUsername(ctx, username); err == nil {
			if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) == nil {
				accepted = true
				welcome = fmt.Sprintf("Welcome back, %s!", username)
			}
		}
		if !accepted && len(username) >= minUsernameLen && len(password) >= minPasswordLen {
			accepted = true
			welcome = fmt.Sprintf("Welcome, %s!", username)
		}
	}

	if !accepted {
		s.notifier.Notify("Invalid username or password. Try demo/password123", notify.SeverityError, configs.ToastDuration)
		return false
	}

	session := models.Session{
		LoggedIn:       true,
		Username:       username,
		Role:           models.RoleMember,
		Email:          fmt.Sprintf("%s@%s", username, configs.EmailDomain),
		LoginTimestamp: s.clock.Now(),
	}
	if err := s.store.Set(ctx, profileID, models.KVKeySession, session); err != nil {
		configslog.Log.Error("session persist failed", zap.String("profile", profileID), zap.Error(err))
		s.notifier.Notify("Login failed. Please try again later.", notify.SeverityError, configs.ToastDuration)
		return false
	}

	s.startTracking(profileID)
	s.notifier.Notify(welcome, notify.SeveritySuccess, configs.ToastDuration)
	configslog.Log.Info("member logged in", zap.String("profile", profileID), zap.String("username", username))
	return true
}

// Logout clears the stored session, stops the inactivity timers and sends
// the user home.
func (s *SessionService) Logout(ctx context.Context, profileID string) {
	s.stopTracking(profileID)
	if err := s.store.Remove(ctx, profileID, models.KVKeySession); err != nil {
		configslog.Log.Error("session remove failed", zap.String("profile", profileID), zap.Error(err))
	}
	s.navigator.Navigate(homePage)
}

// IsLoggedIn reports the current login state. An expired session is logged
// out implicitly before reporting false.
func (s *SessionService) IsLoggedIn(ctx context.Context, profileID string) bool {
	session, ok := s.readSession(ctx, profileID)
	if !ok {
		return false
	}
	if s.clock.Now().Sub(session.LoginTimestamp) > configs.SessionTimeout {
		s.stopTracking(profileID)
		if err := s.store.Remove(ctx, profileID, models.KVKeySession); err != nil {
			configslog.Log.Error("expired session remove failed", zap.String("profile", profileID), zap.Error(err))
		}
		return false
	}
	return true
}

// CurrentSession returns the stored session when it is still valid.
func (s *SessionService) CurrentSession(ctx context.Context, profileID string) (models.Session, bool) {
	if !s.IsLoggedIn(ctx, profileID) {
		return models.Session{}, false
	}
	return s.readSession(ctx, profileID)
}

// Username returns the logged-in name, or "Member" as the display default.
func (s *SessionService) Username(ctx context.Context, profileID string) string {
	if session, ok := s.readSession(ctx, profileID); ok && session.Username != "" {
		return session.Username
	}
	return "Member"
}

// Touch records user activity: the inactivity timers restart and the
// sliding window moves forward.
func (s *SessionService) Touch(ctx context.Context, profileID string) {
	s.mu.Lock()
	_, tracking := s.timers[profileID]
	s.mu.Unlock()
	if !tracking {
		return
	}

	if session, ok := s.readSession(ctx, profileID); ok {
		session.LoginTimestamp = s.clock.Now()
		if err := s.store.Set(ctx, profileID, models.KVKeySession, session); err != nil {
			configslog.Log.Error("session touch persist failed", zap.String("profile", profileID), zap.Error(err))
		}
	}
	s.startTracking(profileID)
}

// CheckProtectedAccess warns and redirects to the login page when a
// member-only page is opened without a valid session. The redirect is
// delayed so the warning can be read.
func (s *SessionService) CheckProtectedAccess(ctx context.Context, profileID, currentPage string) {
	if !configs.ProtectedPages[currentPage] || s.IsLoggedIn(ctx, profileID) {
		return
	}
	s.notifier.Notify("Please log in to access this page.", notify.SeverityWarning, configs.ToastDuration)
	s.clock.AfterFunc(configs.ProtectedRedirectWait, func() {
		s.navigator.Navigate(loginPage)
	})
}

// ClearDemoState wipes any lingering demo session without notification or
// redirect. Public pages call this on load.
func (s *SessionService) ClearDemoState(ctx context.Context, profileID string) {
	s.stopTracking(profileID)
	if err := s.store.Remove(ctx, profileID, models.KVKeySession); err != nil {
		configslog.Log.Error("demo state clear failed", zap.String("profile", profileID), zap.Error(err))
	}
}

// NavigationState is what the nav view renders: which regions show and the
// user display text.
func (s *SessionService) NavigationState(ctx context.Context, profileID string) models.NavigationState {
	if !s.IsLoggedIn(ctx, profileID) {
		return models.NavigationState{}
	}
	username := s.Username(ctx, profileID)
	return models.NavigationState{
		LoggedIn: true,
		Username: username,
		Display:  fmt.Sprintf("Welcome, %s!", username),
	}
}

// Shutdown cancels every profile's timers.
func (s *SessionService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for profileID, t := range s.timers {
		t.warning.Stop()
		t.logout.Stop()
		delete(s.timers, profileID)
	}
}

func (s *SessionService) readSession(ctx context.Context, profileID string) (models.Session, bool) {
	var session models.Session
	if !s.store.Get(ctx, profileID, models.KVKeySession, &session) || !session.LoggedIn {
		return models.Session{}, false
	}
	return session, true
}

// startTracking (re)arms the warning and logout timers for a profile.
func (s *SessionService) startTracking(profileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[profileID]; ok {
		t.warning.Stop()
		t.logout.Stop()
	}
	s.timers[profileID] = &inactivityTimers{
		warning: s.clock.AfterFunc(configs.SessionTimeout-configs.SessionWarningLead, func() {
			s.notifier.Notify("Your session will expire in 5 minutes. Keep browsing to stay logged in.",
				notify.SeverityWarning, configs.ToastDuration)
		}),
		logout: s.clock.AfterFunc(configs.SessionTimeout, func() {
			s.forceLogout(profileID)
		}),
	}
}

func (s *SessionService) stopTracking(profileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[profileID]; ok {
		t.warning.Stop()
		t.logout.Stop()
		delete(s.timers, profileID)
	}
}

// forceLogout is the inactivity-timer path: same cleanup as Logout plus the
// explanation toast.
func (s *SessionService) forceLogout(profileID string) {
	configslog.Log.Info("session expired by inactivity", zap.String("profile", profileID))
	s.notifier.Notify("You have been logged out due to inactivity.", notify.SeverityInfo, configs.ToastDuration)
	s.Logout(context.Background(), profileID)
}

var _ ISessionService = (*SessionService)(nil)
