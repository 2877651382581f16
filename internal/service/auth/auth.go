package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/hemobank/hemobank_backend/config"
	"github.com/hemobank/hemobank_backend/internal/repo"
	entbiologist "github.com/hemobank/hemobank_backend/internal/repo/biologist"
	entchef "github.com/hemobank/hemobank_backend/internal/repo/chefservice"
	pasetotoken "github.com/hemobank/hemobank_backend/pkg/paseto"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
	"github.com/hemobank/hemobank_backend/pkg/util/password"
)

const defaultMinPasswordLength = 6

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Username string
	Password string
}

type RegisterBiologistRequest struct {
	FirstName   string
	LastName    string
	Username    string
	Email       string
	PhoneNumber *string
	Password    string
}

type RegisterChefRequest struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// Profile is the password-free account summary returned with a token.
type Profile struct {
	ID        uuid.UUID   `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      reqctx.Role `json:"role"`
}

type LoginResult struct {
	Token     string  `json:"token"`
	ExpiresIn int64   `json:"expires_in"` // seconds until the token expires
	Profile   Profile `json:"profile"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Login resolves the role by lookup order: the biologist table is
	// consulted first, then the chef table. The resolved role is fixed
	// into the issued token and never re-read afterwards.
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)

	RegisterBiologist(ctx context.Context, req RegisterBiologistRequest) (*Profile, error)
	RegisterChef(ctx context.Context, req RegisterChefRequest) (*Profile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db         *repo.Client
	paseto     *pasetotoken.Manager
	hashParams *password.Params
	minPwLen   int
}

func New(db *repo.Client, paseto *pasetotoken.Manager, cfg *config.Config) Service {
	minLen := cfg.Authentication.MinPasswordLength
	if minLen <= 0 {
		minLen = defaultMinPasswordLength
	}
	return &authService{
		db:         db,
		paseto:     paseto,
		hashParams: password.FromCentralConfig(cfg.Password),
		minPwLen:   minLen,
	}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	profile, hash, err := s.findPrincipal(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := password.Verify(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.paseto.Issue(reqctx.Principal{ID: profile.ID, Role: profile.Role})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(s.paseto.AccessTTL().Seconds()),
		Profile:   *profile,
	}, nil
}

// findPrincipal tries the biologist table first, then the chef table.
func (s *authService) findPrincipal(ctx context.Context, username string) (*Profile, string, error) {
	b, err := s.db.Biologist.Query().
		Where(entbiologist.Username(username)).
		Only(ctx)
	if err == nil {
		return &Profile{
			ID:        b.ID,
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Username:  b.Username,
			Email:     b.Email,
			Role:      reqctx.RoleBiologist,
		}, b.PasswordHash, nil
	}
	if !repo.IsNotFound(err) {
		return nil, "", fmt.Errorf("query biologist: %w", err)
	}

	c, err := s.db.ChefService.Query().
		Where(entchef.Username(username)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("query chef service: %w", err)
	}
	return &Profile{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Username:  c.Username,
		Email:     c.Email,
		Role:      reqctx.RoleChefService,
	}, c.PasswordHash, nil
}

func (s *authService) RegisterBiologist(ctx context.Context, req RegisterBiologistRequest) (*Profile, error) {
	if err := s.validateRegistration(req.FirstName, req.LastName, req.Username, req.Email, req.Password); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.db.Biologist.Query().
		Where(entbiologist.Or(entbiologist.Username(username), entbiologist.Email(email))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("check biologist uniqueness: %w", err)
	}
	if err := uniquenessError(taken, username); err != nil {
		return nil, err
	}

	hash, err := password.HashWithParams(req.Password, s.hashParams)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := s.db.Biologist.Create().
		SetFirstName(strings.TrimSpace(req.FirstName)).
		SetLastName(strings.TrimSpace(req.LastName)).
		SetUsername(username).
		SetEmail(email).
		SetPasswordHash(hash)
	if req.PhoneNumber != nil {
		c = c.SetNillablePhoneNumber(req.PhoneNumber)
	}

	b, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("create biologist: %w", err)
	}

	return &Profile{
		ID:        b.ID,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Username:  b.Username,
		Email:     b.Email,
		Role:      reqctx.RoleBiologist,
	}, nil
}

func (s *authService) RegisterChef(ctx context.Context, req RegisterChefRequest) (*Profile, error) {
	if err := s.validateRegistration(req.FirstName, req.LastName, req.Username, req.Email, req.Password); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.db.ChefService.Query().
		Where(entchef.Or(entchef.Username(username), entchef.Email(email))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("check chef uniqueness: %w", err)
	}
	for _, existing := range taken {
		if existing.Username == username {
			return nil, ErrUsernameExists
		}
		return nil, ErrEmailExists
	}

	hash, err := password.HashWithParams(req.Password, s.hashParams)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c, err := s.db.ChefService.Create().
		SetFirstName(strings.TrimSpace(req.FirstName)).
		SetLastName(strings.TrimSpace(req.LastName)).
		SetUsername(username).
		SetEmail(email).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("create chef service: %w", err)
	}

	return &Profile{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Username:  c.Username,
		Email:     c.Email,
		Role:      reqctx.RoleChefService,
	}, nil
}

func (s *authService) validateRegistration(firstName, lastName, username, email, pw string) error {
	if strings.TrimSpace(firstName) == "" ||
		strings.TrimSpace(lastName) == "" ||
		strings.TrimSpace(username) == "" ||
		strings.TrimSpace(email) == "" {
		return ErrMissingFields
	}
	if !reEmail.MatchString(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	if len(pw) < s.minPwLen {
		return ErrPasswordTooShort
	}
	return nil
}

func uniquenessError(existing []*repo.Biologist, username string) error {
	for _, b := range existing {
		if b.Username == username {
			return ErrUsernameExists
		}
		return ErrEmailExists
	}
	return nil
}
