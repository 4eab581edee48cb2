package auth

import (
	"context"
	"testing"

	"legitlah-be/internal/chain"
	"legitlah-be/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) VerifyCredentials(ctx context.Context, emailHash, passwordHash []byte) (chain.CredentialResult, error) {
	args := m.Called(ctx, emailHash, passwordHash)
	return args.Get(0).(chain.CredentialResult), args.Error(1)
}

func (m *MockRegistry) RegisterUser(ctx context.Context, emailHash, passwordHash []byte, role int, opts chain.TxOpts) (*chain.Receipt, error) {
	args := m.Called(ctx, emailHash, passwordHash, role, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.Receipt), args.Error(1)
}

func (m *MockRegistry) SetAdminByEmailHash(ctx context.Context, emailHash []byte, opts chain.TxOpts) (*chain.Receipt, error) {
	args := m.Called(ctx, emailHash, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.Receipt), args.Error(1)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := session.NewStore()
		registry := new(MockRegistry)
		svc := NewService(store, registry)

		registry.On("VerifyCredentials", ctx,
			HashCredential("c373@mail.com"), HashCredential("C3732026!")).
			Return(chain.CredentialResult{
				IsValid:      true,
				Role:         3,
				IdentityHash: []byte{0xaa},
				Account:      "0xADMIN",
			}, nil)

		token, id, err := svc.Login(ctx, " C373@Mail.com ", "C3732026!")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, session.RoleAdmin, id.Role)

		// the issued token round-trips through the store with the same
		// role and identity hash
		sess, ok := store.Lookup(token)
		require.True(t, ok)
		assert.Equal(t, session.RoleAdmin, sess.Role)
		assert.Equal(t, []byte{0xaa}, sess.IdentityHash)
		registry.AssertExpectations(t)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		registry := new(MockRegistry)
		svc := NewService(session.NewStore(), registry)

		registry.On("VerifyCredentials", ctx, mock.Anything, mock.Anything).
			Return(chain.CredentialResult{IsValid: false, Role: 0}, nil)

		_, _, err := svc.Login(ctx, "a@b.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("RoleZeroIsUnauthenticated", func(t *testing.T) {
		registry := new(MockRegistry)
		svc := NewService(session.NewStore(), registry)

		registry.On("VerifyCredentials", ctx, mock.Anything, mock.Anything).
			Return(chain.CredentialResult{IsValid: true, Role: 0}, nil)

		_, _, err := svc.Login(ctx, "a@b.com", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("MissingInput", func(t *testing.T) {
		registry := new(MockRegistry)
		svc := NewService(session.NewStore(), registry)

		_, _, err := svc.Login(ctx, "", "pw")
		assert.ErrorIs(t, err, ErrMissingCredentials)
		registry.AssertNotCalled(t, "VerifyCredentials", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("GatewayError", func(t *testing.T) {
		registry := new(MockRegistry)
		svc := NewService(session.NewStore(), registry)

		registry.On("VerifyCredentials", ctx, mock.Anything, mock.Anything).
			Return(chain.CredentialResult{}, chain.ErrGatewayUnavailable)

		_, _, err := svc.Login(ctx, "a@b.com", "pw")
		assert.ErrorIs(t, err, chain.ErrGatewayUnavailable)
	})
}

func TestService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("MismatchedConfirmNeverReachesGateway", func(t *testing.T) {
		registry := new(MockRegistry)
		svc := NewService(session.NewStore(), registry)

		_, _, err := svc.Signup(ctx, "a@b.com", "pw1", "pw2", "user")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
		registry.AssertNotCalled(t, "RegisterUser",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InvalidAccountType", func(t *testing.T) {
		registry := new(MockRegistry)
		svc := NewService(session.NewStore(), registry)

		_, _, err := svc.Signup(ctx, "a@b.com", "pw", "pw", "admin")
		assert.ErrorIs(t, err, ErrInvalidAccountType)
		registry.AssertNotCalled(t, "RegisterUser",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SellerSignup", func(t *testing.T) {
		registry := new(MockRegistry)
		svc := NewService(session.NewStore(), registry)

		emailHash := HashCredential("s@b.com")
		pwHash := HashCredential("pw")

		registry.On("RegisterUser", ctx, emailHash, pwHash, 2, chain.TxOpts{}).
			Return(&chain.Receipt{TxHash: "0x1"}, nil)
		registry.On("VerifyCredentials", ctx, emailHash, pwHash).
			Return(chain.CredentialResult{
				IsValid: true, Role: 2, IdentityHash: []byte{0xbb}, Account: "0xSELLER",
			}, nil)

		token, id, err := svc.Signup(ctx, "s@b.com", "pw", "pw", "seller")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, session.RoleSeller, id.Role)
		registry.AssertExpectations(t)
	})

	t.Run("RegistrationError", func(t *testing.T) {
		registry := new(MockRegistry)
		svc := NewService(session.NewStore(), registry)

		registry.On("RegisterUser", ctx, mock.Anything, mock.Anything, 1, chain.TxOpts{}).
			Return(nil, chain.ErrGatewayUnavailable)

		_, _, err := svc.Signup(ctx, "a@b.com", "pw", "pw", "user")
		assert.ErrorIs(t, err, chain.ErrGatewayUnavailable)
	})
}

func TestService_Logout(t *testing.T) {
	store := session.NewStore()
	svc := NewService(store, new(MockRegistry))

	token, err := store.Create([]byte{1}, "0xA", session.RoleUser)
	require.NoError(t, err)

	svc.Logout(token)

	_, ok := store.Lookup(token)
	assert.False(t, ok)
}

func TestService_PromoteAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		registry := new(MockRegistry)
		svc := NewService(session.NewStore(), registry)

		registry.On("SetAdminByEmailHash", ctx,
			HashCredential("new@admin.com"), chain.TxOpts{From: "0xADMIN"}).
			Return(&chain.Receipt{TxHash: "0x2"}, nil)

		err := svc.PromoteAdmin(ctx, "0xADMIN", " New@Admin.com ")
		assert.NoError(t, err)
		registry.AssertExpectations(t)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		registry := new(MockRegistry)
		svc := NewService(session.NewStore(), registry)

		err := svc.PromoteAdmin(ctx, "0xADMIN", "  ")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})
}
