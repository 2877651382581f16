package account

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hemobank/hemobank_backend/config"
	"github.com/hemobank/hemobank_backend/internal/repo"
	entbiologist "github.com/hemobank/hemobank_backend/internal/repo/biologist"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
	"github.com/hemobank/hemobank_backend/pkg/util/password"
)

const defaultMinPasswordLength = 6

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateBiologistRequest struct {
	FirstName   *string
	LastName    *string
	Username    *string
	Email       *string
	PhoneNumber *string
	Password    *string
}

type UpdateChefRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	ListBiologists(ctx context.Context) ([]*repo.Biologist, error)
	GetBiologist(ctx context.Context, id uuid.UUID) (*repo.Biologist, error)
	UpdateBiologist(ctx context.Context, id uuid.UUID, req UpdateBiologistRequest) (*repo.Biologist, error)

	// DeleteBiologist refuses while the account still owns blood bags.
	DeleteBiologist(ctx context.Context, id uuid.UUID) error

	// ChefProfile and UpdateChefProfile act on the authenticated principal
	// carried by ctx. They return reqctx.ErrNoPrincipal when ctx carries
	// none.
	ChefProfile(ctx context.Context) (*repo.ChefService, error)
	UpdateChefProfile(ctx context.Context, req UpdateChefRequest) (*repo.ChefService, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type accountService struct {
	db         *repo.Client
	hashParams *password.Params
	minPwLen   int
}

func New(db *repo.Client, cfg *config.Config) Service {
	minLen := cfg.Authentication.MinPasswordLength
	if minLen <= 0 {
		minLen = defaultMinPasswordLength
	}
	return &accountService{
		db:         db,
		hashParams: password.FromCentralConfig(cfg.Password),
		minPwLen:   minLen,
	}
}

func (s *accountService) ListBiologists(ctx context.Context) ([]*repo.Biologist, error) {
	bios, err := s.db.Biologist.Query().
		Order(entbiologist.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list biologists: %w", err)
	}
	return bios, nil
}

func (s *accountService) GetBiologist(ctx context.Context, id uuid.UUID) (*repo.Biologist, error) {
	b, err := s.db.Biologist.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBiologistNotFound
		}
		return nil, fmt.Errorf("get biologist: %w", err)
	}
	return b, nil
}

func (s *accountService) UpdateBiologist(ctx context.Context, id uuid.UUID, req UpdateBiologistRequest) (*repo.Biologist, error) {
	b, err := s.GetBiologist(ctx, id)
	if err != nil {
		return nil, err
	}

	u := s.db.Biologist.UpdateOne(b)

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username != b.Username {
			taken, err := s.db.Biologist.Query().
				Where(entbiologist.Username(username), entbiologist.IDNEQ(id)).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("check username: %w", err)
			}
			if taken {
				return nil, ErrUsernameExists
			}
		}
		u = u.SetUsername(username)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != b.Email {
			taken, err := s.db.Biologist.Query().
				Where(entbiologist.Email(email), entbiologist.IDNEQ(id)).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if taken {
				return nil, ErrEmailExists
			}
		}
		u = u.SetEmail(email)
	}
	if req.FirstName != nil {
		u = u.SetFirstName(strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		u = u.SetLastName(strings.TrimSpace(*req.LastName))
	}
	if req.PhoneNumber != nil {
		u = u.SetNillablePhoneNumber(req.PhoneNumber)
	}
	if req.Password != nil {
		if len(*req.Password) < s.minPwLen {
			return nil, ErrPasswordTooShort
		}
		hash, err := password.HashWithParams(*req.Password, s.hashParams)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u = u.SetPasswordHash(hash)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("update biologist: %w", err)
	}
	return updated, nil
}

func (s *accountService) DeleteBiologist(ctx context.Context, id uuid.UUID) error {
	b, err := s.db.Biologist.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrBiologistNotFound
		}
		return fmt.Errorf("get biologist: %w", err)
	}

	ownsBags, err := b.QueryBloodBags().Exist(ctx)
	if err != nil {
		return fmt.Errorf("check owned bags: %w", err)
	}
	if ownsBags {
		return ErrBiologistOwnsBags
	}

	return s.db.Biologist.DeleteOne(b).Exec(ctx)
}

func (s *accountService) ChefProfile(ctx context.Context) (*repo.ChefService, error) {
	principal, err := reqctx.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.db.ChefService.Get(ctx, principal.ID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrChefNotFound
		}
		return nil, fmt.Errorf("get chef service: %w", err)
	}
	return c, nil
}

func (s *accountService) UpdateChefProfile(ctx context.Context, req UpdateChefRequest) (*repo.ChefService, error) {
	c, err := s.ChefProfile(ctx)
	if err != nil {
		return nil, err
	}

	u := s.db.ChefService.UpdateOne(c)
	if req.FirstName != nil {
		u = u.SetFirstName(strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		u = u.SetLastName(strings.TrimSpace(*req.LastName))
	}
	if req.Email != nil {
		u = u.SetEmail(strings.ToLower(strings.TrimSpace(*req.Email)))
	}
	if req.Password != nil {
		if len(*req.Password) < s.minPwLen {
			return nil, ErrPasswordTooShort
		}
		hash, err := password.HashWithParams(*req.Password, s.hashParams)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u = u.SetPasswordHash(hash)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("update chef service: %w", err)
	}
	return updated, nil
}
