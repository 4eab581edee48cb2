package auth

import (
	"context"

	"legitlah-be/internal/chain"
	"legitlah-be/internal/logger"
	"legitlah-be/internal/session"

	"go.uber.org/zap"
)

// UserRegistry is the slice of the contract gateway the auth service
// needs. chain.Registry satisfies it.
type UserRegistry interface {
	VerifyCredentials(ctx context.Context, emailHash, passwordHash []byte) (chain.CredentialResult, error)
	RegisterUser(ctx context.Context, emailHash, passwordHash []byte, role int, opts chain.TxOpts) (*chain.Receipt, error)
	SetAdminByEmailHash(ctx context.Context, emailHash []byte, opts chain.TxOpts) (*chain.Receipt, error)
}

type Service struct {
	sessions *session.Store
	registry UserRegistry
}

func NewService(sessions *session.Store, registry UserRegistry) *Service {
	return &Service{sessions: sessions, registry: registry}
}

// Login verifies hashed credentials against the registry and issues a
// session token. Role zero from the registry means unauthenticated.
func (s *Service) Login(ctx context.Context, email, password string) (string, Identity, error) {
	log := logger.FromCtx(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", Identity{}, ErrMissingCredentials
	}

	res, err := s.registry.VerifyCredentials(ctx, HashCredential(email), HashCredential(password))
	if err != nil {
		log.Error("credential verification failed", zap.Error(err))
		return "", Identity{}, err
	}

	role := session.RoleFromInt(res.Role)
	if !res.IsValid || role == session.RoleNone {
		log.Warn("login rejected", zap.String("email", email))
		return "", Identity{}, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(res.IdentityHash, res.Account, role)
	if err != nil {
		return "", Identity{}, err
	}

	log.Info("login succeeded",
		zap.String("role", role.String()),
		zap.String("account", res.Account),
	)

	return token, Identity{
		Role:         role,
		IdentityHash: res.IdentityHash,
		Account:      res.Account,
		Token:        token,
	}, nil
}

// Signup registers a new user or seller and logs them in. Confirmation
// must match before anything reaches the gateway, and admin can never be
// chosen here.
func (s *Service) Signup(ctx context.Context, email, password, confirm, accountType string) (string, Identity, error) {
	log := logger.FromCtx(ctx)

	if password != confirm {
		return "", Identity{}, ErrPasswordMismatch
	}

	var role session.Role
	switch accountType {
	case "user":
		role = session.RoleUser
	case "seller":
		role = session.RoleSeller
	default:
		return "", Identity{}, ErrInvalidAccountType
	}

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", Identity{}, ErrMissingCredentials
	}

	_, err := s.registry.RegisterUser(ctx,
		HashCredential(email), HashCredential(password), int(role), chain.TxOpts{})
	if err != nil {
		log.Error("registration failed", zap.String("email", email), zap.Error(err))
		return "", Identity{}, err
	}

	log.Info("user registered", zap.String("email", email), zap.String("role", role.String()))

	return s.Login(ctx, email, password)
}

// Logout destroys the session behind a token. In-flight requests holding
// the old token may still complete; that is the existing trust model.
func (s *Service) Logout(token string) {
	s.sessions.Destroy(token)
}

// PromoteAdmin flips a registered user to admin by email hash. Only
// reachable through admin-guarded routes.
func (s *Service) PromoteAdmin(ctx context.Context, actingAs, email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return ErrMissingCredentials
	}

	_, err := s.registry.SetAdminByEmailHash(ctx, HashCredential(email), chain.TxOpts{From: actingAs})
	if err != nil {
		logger.FromCtx(ctx).Error("admin promotion failed", zap.String("email", email), zap.Error(err))
		return err
	}

	logger.FromCtx(ctx).Info("admin promoted", zap.String("email", email))
	return nil
}
