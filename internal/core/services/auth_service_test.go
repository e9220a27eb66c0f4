package services

import (
	"context"
	"path/filepath"
	"testing"

	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/config"
	"mycloth-atelier/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminEmail = "prathmeshkambleoffice@gmail.com"

func newLocalAuth(t *testing.T) (*AuthService, *localstore.ClientState, context.Context) {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		StorageMode: config.StorageLocal,
		AdminEmails: []string{testAdminEmail},
		JWT:         config.JWTConfig{Secret: "test_secret", AccessTokenMins: 60},
	}

	state := localstore.NewClientState(store)
	svc := NewAuthService(localstore.NewUserStore(store), nil, state, cfg)
	return svc, state, context.Background()
}

func TestLocalLoginUnknownEmail(t *testing.T) {
	svc, _, ctx := newLocalAuth(t)

	_, err := svc.Login(ctx, "sess", &LoginInput{Email: "nobody@example.com", Password: "whatever"})

	require.ErrorIs(t, err, domain.ErrCredentialsNotRecognized)
	assert.EqualError(t, err, "credentials not recognized in the archive")
}

func TestLocalLoginAdminAllowList(t *testing.T) {
	svc, _, ctx := newLocalAuth(t)

	user, err := svc.Login(ctx, "sess", &LoginInput{Email: testAdminEmail, Password: "anything at all"})

	require.NoError(t, err, "local mode accepts any password for the allow-listed email")
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, "admin-001", user.ID)
	assert.Equal(t, "MyCloth Director", user.Name)
	assert.NotEmpty(t, user.Token)
}

func TestLocalLoginKnownUserAnyPassword(t *testing.T) {
	svc, _, ctx := newLocalAuth(t)

	_, err := svc.Signup(ctx, "sess", &SignupInput{Name: "Asha", Email: "asha@example.com", Password: "pw"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "sess", &LoginInput{Email: "asha@example.com", Password: "completely different"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, "Asha", user.Name)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, ctx := newLocalAuth(t)

	_, err := svc.Signup(ctx, "sess", &SignupInput{Name: "Asha", Email: "asha@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "sess", &SignupInput{Name: "Other", Email: "Asha@Example.com", Password: "pw"})
	require.ErrorIs(t, err, domain.ErrIdentityArchived)
	assert.EqualError(t, err, "this identity is already archived")
}

func TestSignupAdminAllowListGetsAdminRole(t *testing.T) {
	svc, _, ctx := newLocalAuth(t)

	user, err := svc.Signup(ctx, "sess", &SignupInput{Name: "Director", Email: testAdminEmail, Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestSessionCacheSurvivesServiceRestart(t *testing.T) {
	svc, state, ctx := newLocalAuth(t)

	_, err := svc.Login(ctx, "sess", &LoginInput{Email: testAdminEmail, Password: "pw"})
	require.NoError(t, err)

	// A fresh service over the same store sees the cached session
	cached, err := state.Session("sess")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, testAdminEmail, cached.Email)

	user, err := svc.Me(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestLogoutClearsSession(t *testing.T) {
	svc, _, ctx := newLocalAuth(t)

	_, err := svc.Login(ctx, "sess", &LoginInput{Email: testAdminEmail, Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "sess", ""))

	_, err = svc.Me(ctx, "sess")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMeWithoutSession(t *testing.T) {
	svc, _, ctx := newLocalAuth(t)

	_, err := svc.Me(ctx, "never-seen")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
