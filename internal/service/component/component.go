package component

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hemobank/hemobank_backend/internal/repo"
	entcomponent "github.com/hemobank/hemobank_backend/internal/repo/component"
)

// Shelf life in days per component type, counted from the parent bag's
// collection date. Unknown types fall back to the whole-blood shelf life.
const (
	ShelfLifeCps     = 5
	ShelfLifePfc     = 365
	ShelfLifeCg      = 42
	ShelfLifeDefault = 35
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Type   string
	Weight float64
	BagID  uuid.UUID
}

// UpdateRequest deliberately exposes only the mutable fields. Type and parent
// bag are fixed at creation; expiry follows the parent bag.
type UpdateRequest struct {
	Weight        *float64
	IsDistributed *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]*repo.Component, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Component, error)
	ListByType(ctx context.Context, typ string) ([]*repo.Component, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Component, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Component, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type componentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &componentService{db: db}
}

// ShelfLifeDays returns the shelf life for a component type.
func ShelfLifeDays(typ entcomponent.Type) int {
	switch typ {
	case entcomponent.TypeCps:
		return ShelfLifeCps
	case entcomponent.TypePfc:
		return ShelfLifePfc
	case entcomponent.TypeCg:
		return ShelfLifeCg
	default:
		return ShelfLifeDefault
	}
}

// ExpireDate derives a component's expiry from the parent bag's collection
// date and the component type.
func ExpireDate(collection time.Time, typ entcomponent.Type) time.Time {
	return collection.AddDate(0, 0, ShelfLifeDays(typ))
}

func parseType(typ string) (entcomponent.Type, error) {
	t := entcomponent.Type(typ)
	if err := entcomponent.TypeValidator(t); err != nil {
		return "", ErrInvalidComponentType
	}
	return t, nil
}

func (s *componentService) List(ctx context.Context) ([]*repo.Component, error) {
	comps, err := s.db.Component.Query().
		WithBag().
		Order(entcomponent.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	return comps, nil
}

func (s *componentService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Component, error) {
	c, err := s.db.Component.Query().
		Where(entcomponent.ID(id)).
		WithBag().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrComponentNotFound
		}
		return nil, fmt.Errorf("get component: %w", err)
	}
	return c, nil
}

func (s *componentService) ListByType(ctx context.Context, typ string) ([]*repo.Component, error) {
	t, err := parseType(typ)
	if err != nil {
		return nil, err
	}

	comps, err := s.db.Component.Query().
		Where(entcomponent.TypeEQ(t)).
		WithBag().
		Order(entcomponent.ByExpireDate(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components by type: %w", err)
	}
	return comps, nil
}

func (s *componentService) Create(ctx context.Context, req CreateRequest) (*repo.Component, error) {
	t, err := parseType(req.Type)
	if err != nil {
		return nil, err
	}

	bag, err := s.db.BloodBag.Get(ctx, req.BagID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrParentBagNotFound
		}
		return nil, fmt.Errorf("get parent bag: %w", err)
	}

	c, err := s.db.Component.Create().
		SetType(t).
		SetWeight(req.Weight).
		SetExpireDate(ExpireDate(bag.CollectionDate, t)).
		SetBagbloodID(bag.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create component: %w", err)
	}
	return c, nil
}

func (s *componentService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Component, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u := s.db.Component.UpdateOne(c)
	if req.Weight != nil {
		u = u.SetWeight(*req.Weight)
	}
	if req.IsDistributed != nil {
		u = u.SetIsDistributed(*req.IsDistributed)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update component: %w", err)
	}
	return updated, nil
}

func (s *componentService) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.db.Component.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrComponentNotFound
		}
		return fmt.Errorf("get component: %w", err)
	}
	if c.IsDistributed {
		return ErrComponentDistributed
	}
	return s.db.Component.DeleteOne(c).Exec(ctx)
}
