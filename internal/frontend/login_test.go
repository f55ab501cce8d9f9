package frontend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ElvisGalvez/bill-app/internal/frontend"
	"github.com/ElvisGalvez/bill-app/internal/frontend/mocks"
	"github.com/ElvisGalvez/bill-app/internal/localstore"
	"github.com/ElvisGalvez/bill-app/internal/models"
	"github.com/ElvisGalvez/bill-app/pkg/logging"
)

var johnDoe = models.Credentials{Email: "johndoe@email.com", Password: "azerty"}

func TestSubmitStoresTokenAndSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	storage := mocks.NewMockStorage(ctrl)
	nav := mocks.NewMockNavigator(ctrl)

	store.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "johndoe@email.com", Password: "azerty"}).
		Return(&models.LoginResponse{JWT: "fake.jwt.token"}, nil)
	gomock.InOrder(
		storage.EXPECT().SetItem(localstore.KeyJWT, "fake.jwt.token"),
		storage.EXPECT().SetItem(localstore.KeyUser,
			`{"type":"Employee","email":"johndoe@email.com","password":"azerty","status":"connected"}`),
		nav.EXPECT().Navigate(frontend.RouteBills),
	)

	login := frontend.NewLogin(frontend.Options{Store: store, Storage: storage, Navigator: nav, Logger: logging.Discard()})
	session, err := login.HandleSubmitEmployee(context.Background(), johnDoe)
	require.NoError(t, err)

	assert.Equal(t, models.RoleEmployee, session.Type)
	assert.Equal(t, models.SessionConnected, session.Status)
	assert.Equal(t, frontend.StateNavigatedHome, login.LastState())
}

func TestSubmitWithoutTokenClearsStaleJWT(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.storage.SetItem(localstore.KeyJWT, "previous.user.token"))
	f.store.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&models.LoginResponse{}, nil)
	f.nav.EXPECT().Navigate(frontend.RouteAdminDashboard)

	_, err := frontend.NewLogin(f.options()).HandleSubmitAdmin(context.Background(), johnDoe)
	require.NoError(t, err)

	_, ok := f.storage.GetItem(localstore.KeyJWT)
	assert.False(t, ok)

	session, err := localstore.LoadSession(f.storage)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.Type)
}

func TestSubmitCreatesAccountWhenLoginFails(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("unauthenticated")).Times(1)
	f.users.EXPECT().Create(gomock.Any(), models.Session{
		Type:     models.RoleAdmin,
		Email:    "johndoe@email.com",
		Password: "azerty",
		Status:   "connected",
	}).Return(nil).Times(1)
	f.nav.EXPECT().Navigate(frontend.RouteAdminDashboard)

	login := frontend.NewLogin(f.options())
	session, err := login.HandleSubmitAdmin(context.Background(), johnDoe)
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, session.Type)
	assert.Equal(t, frontend.StateNavigatedHome, login.LastState())

	stored, err := localstore.LoadSession(f.storage)
	require.NoError(t, err)
	assert.Equal(t, *session, *stored)
}

func TestSubmitReturnsProvisioningError(t *testing.T) {
	createErr := errors.New("email already used")

	f := newFixture(t)
	f.store.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("unauthenticated"))
	f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(createErr)

	login := frontend.NewLogin(f.options())
	session, err := login.HandleSubmitEmployee(context.Background(), johnDoe)

	assert.Nil(t, session)
	assert.Same(t, createErr, err)
	assert.Equal(t, frontend.StateFailed, login.LastState())

	_, err = localstore.LoadSession(f.storage)
	assert.ErrorIs(t, err, localstore.ErrNoSession)
}

func TestSubmitWithoutStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	nav := mocks.NewMockNavigator(ctrl)

	login := frontend.NewLogin(frontend.Options{Storage: storage, Navigator: nav})
	session, err := login.HandleSubmitEmployee(context.Background(), johnDoe)

	assert.NoError(t, err)
	assert.Nil(t, session)
	assert.Equal(t, frontend.StateIdle, login.LastState())
}

func TestSubmitStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	storage := mocks.NewMockStorage(ctrl)

	store.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&models.LoginResponse{}, nil)
	storage.EXPECT().RemoveItem(localstore.KeyJWT).Return(nil)
	storage.EXPECT().SetItem(localstore.KeyUser, gomock.Any()).Return(errors.New("disk full"))

	login := frontend.NewLogin(frontend.Options{Store: store, Storage: storage, Logger: logging.Discard()})
	_, err := login.HandleSubmitEmployee(context.Background(), johnDoe)

	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, frontend.StateFailed, login.LastState())
}

func TestLoginStateString(t *testing.T) {
	tests := []struct {
		state frontend.LoginState
		want  string
	}{
		{frontend.StateIdle, "idle"},
		{frontend.StateCreatingAccount, "creating_account"},
		{frontend.StateNavigatedHome, "navigated_home"},
		{frontend.StateFailed, "failed"},
		{frontend.LoginState(42), "LoginState(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}
