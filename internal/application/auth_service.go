package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/formgate/formgate/internal/domain/entity"
	"github.com/formgate/formgate/internal/domain/repository"
	"github.com/formgate/formgate/internal/infrastructure/googleapi"
	"github.com/formgate/formgate/pkg/helpers"
)

// Mode is the authentication method selected per request and fixed per
// account by whichever credential was created at signup.
type Mode string

const (
	ModePassword Mode = "password"
	ModeGoogle   Mode = "google"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrMissingPassword    = errors.New("password is required")
	ErrMissingToken       = errors.New("token is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoPasswordAuth     = errors.New("account has no password authentication")
	ErrNoExternalAuth     = errors.New("account has no google authentication")
	ErrExternalMismatch   = errors.New("token account does not match stored credential")
	ErrEmailMismatch      = errors.New("token email does not match provided email")
	// ErrExternalToken covers both a rejected token and an unreachable
	// verifier; clients see the same answer either way.
	ErrExternalToken = errors.New("invalid external token")
)

const minPasswordLen = 6

// TokenVerifier resolves an opaque provider token into account info.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*googleapi.TokenInfo, error)
}

type AuthService struct {
	Repo     repository.UserRepository
	Verifier TokenVerifier
	JWT      *helpers.JWTManager
	Logger   *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, verifier TokenVerifier, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Verifier: verifier, JWT: jwt, Logger: logger}
}

type SignupInput struct {
	Email    string
	Username string
	Mode     Mode
	Password string
	Token    string
}

type LoginInput struct {
	Email    string
	Mode     Mode
	Password string
	Token    string
}

type AuthResult struct {
	Token       string
	UserID      string
	IsFirstTime bool
}

// Signup creates a new account with the credential matching the requested
// mode and issues a session token for it. The duplicate-email check runs
// before any credential validation so a taken email always answers the
// same way, complete payload or not.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	if _, err := s.Repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	u := &entity.User{Email: in.Email, Username: in.Username}

	switch in.Mode {
	case ModePassword:
		if len(in.Password) < minPasswordLen {
			return nil, ErrPasswordTooShort
		}
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		if err := s.Repo.CreateWithPassword(ctx, u, hash); err != nil {
			return nil, err
		}
	case ModeGoogle:
		if in.Token == "" {
			return nil, ErrMissingToken
		}
		info, err := s.verifyExternal(ctx, in.Token, in.Email)
		if err != nil {
			return nil, err
		}
		if err := s.Repo.CreateWithExternal(ctx, u, info.UserID); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidCredentials
	}

	return s.issue(u.ID, true)
}

// Login authenticates an existing account. The requested mode must match
// the credential type present on the account. The account lookup runs
// before any credential validation so an unknown email always answers the
// same way, complete payload or not.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	switch in.Mode {
	case ModePassword:
		if in.Password == "" {
			return nil, ErrMissingPassword
		}
		cred, err := s.Repo.GetPasswordCredential(ctx, u.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrNoPasswordAuth
			}
			return nil, err
		}
		if !helpers.CompareHashAndPassword(cred.PasswordHash, in.Password) {
			return nil, ErrInvalidCredentials
		}
	case ModeGoogle:
		if in.Token == "" {
			return nil, ErrMissingToken
		}
		info, err := s.verifyExternal(ctx, in.Token, in.Email)
		if err != nil {
			return nil, err
		}
		cred, err := s.Repo.GetExternalCredential(ctx, u.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrNoExternalAuth
			}
			return nil, err
		}
		if cred.GoogleID != info.UserID {
			return nil, ErrExternalMismatch
		}
	default:
		return nil, ErrInvalidCredentials
	}

	return s.issue(u.ID, false)
}

func (s *AuthService) verifyExternal(ctx context.Context, token, email string) (*googleapi.TokenInfo, error) {
	info, err := s.Verifier.Verify(ctx, token)
	if err != nil {
		if s.Logger != nil && !errors.Is(err, googleapi.ErrInvalidToken) {
			s.Logger.WithError(err).Warn("token verifier call failed")
		}
		return nil, ErrExternalToken
	}
	if info.Email != email {
		return nil, ErrEmailMismatch
	}
	return info, nil
}

func (s *AuthService) issue(userID string, firstTime bool) (*AuthResult, error) {
	token, _, err := s.JWT.GenerateToken(userID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("generate session token failed")
		}
		return nil, err
	}
	return &AuthResult{Token: token, UserID: userID, IsFirstTime: firstTime}, nil
}
