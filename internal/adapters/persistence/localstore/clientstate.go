package localstore

import (
	"mycloth-atelier/internal/core/domain"
)

// Theme values persisted per session
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ClientState persists per-session UI state (cart, cached session,
// theme) in the client_state bucket. It is used in both storage modes.
type ClientState struct {
	store *Store
}

// NewClientState creates a client state store
func NewClientState(store *Store) *ClientState {
	return &ClientState{store: store}
}

func cartKey(sessionID string) []byte    { return []byte("cart:" + sessionID) }
func sessionKey(sessionID string) []byte { return []byte("session:" + sessionID) }
func themeKey(sessionID string) []byte   { return []byte("theme:" + sessionID) }

// Cart loads the saved cart for a session, empty when never saved
func (c *ClientState) Cart(sessionID string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := c.store.readList(bucketClientState, cartKey(sessionID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveCart replaces the saved cart for a session
func (c *ClientState) SaveCart(sessionID string, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	return c.store.writeList(bucketClientState, cartKey(sessionID), items)
}

// ClearCart removes the saved cart for a session
func (c *ClientState) ClearCart(sessionID string) error {
	return c.store.deleteKey(bucketClientState, cartKey(sessionID))
}

// Session loads the cached user record, nil when no session is cached
func (c *ClientState) Session(sessionID string) (*domain.User, error) {
	var user *domain.User
	err := c.store.readList(bucketClientState, sessionKey(sessionID), &user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SaveSession caches the user record so the session survives restarts
func (c *ClientState) SaveSession(sessionID string, user domain.User) error {
	return c.store.writeList(bucketClientState, sessionKey(sessionID), user)
}

// ClearSession removes the cached session (logout)
func (c *ClientState) ClearSession(sessionID string) error {
	return c.store.deleteKey(bucketClientState, sessionKey(sessionID))
}

// Theme returns the saved theme preference, light when never saved
func (c *ClientState) Theme(sessionID string) (string, error) {
	var theme string
	err := c.store.readList(bucketClientState, themeKey(sessionID), &theme)
	if err != nil {
		return "", err
	}
	if theme != ThemeDark {
		return ThemeLight, nil
	}
	return ThemeDark, nil
}

// SaveTheme persists the theme preference
func (c *ClientState) SaveTheme(sessionID, theme string) error {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return c.store.writeList(bucketClientState, themeKey(sessionID), theme)
}
