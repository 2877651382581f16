package distribution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hemobank/hemobank_backend/internal/repo"
	entdistribution "github.com/hemobank/hemobank_backend/internal/repo/distribution"
	"github.com/hemobank/hemobank_backend/pkg/database"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	DistributionNumber  string
	ReceiverFirstName   string
	ReceiverLastName    string
	ReceiverAge         int
	ReceiverSex         string
	Establishment       string
	RequestedBloodGroup string
	NumberOfBags        int
	Service             string
	CarrierName         string
	DoctorName          string
	IssuedAt            time.Time
	BagID               uuid.UUID
}

// UpdateRequest covers record fields only. The bag link and its
// is_distributed flag are managed exclusively by Create and Delete.
type UpdateRequest struct {
	DistributionNumber  *string
	ReceiverFirstName   *string
	ReceiverLastName    *string
	ReceiverAge         *int
	ReceiverSex         *string
	Establishment       *string
	RequestedBloodGroup *string
	NumberOfBags        *int
	Service             *string
	CarrierName         *string
	DoctorName          *string
	IssuedAt            *time.Time
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]*repo.Distribution, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Distribution, error)

	// Create inserts the record and marks the bag distributed in one
	// transaction. A bag already flagged distributed is refused.
	Create(ctx context.Context, req CreateRequest) (*repo.Distribution, error)

	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Distribution, error)

	// Delete removes the record and returns the bag to stock in one
	// transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	TotalCount(ctx context.Context) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type distributionService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &distributionService{db: db}
}

func (s *distributionService) List(ctx context.Context) ([]*repo.Distribution, error) {
	dists, err := s.db.Distribution.Query().
		WithBag().
		Order(entdistribution.ByIssuedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}
	return dists, nil
}

func (s *distributionService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Distribution, error) {
	d, err := s.db.Distribution.Query().
		Where(entdistribution.ID(id)).
		WithBag().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDistributionNotFound
		}
		return nil, fmt.Errorf("get distribution: %w", err)
	}
	return d, nil
}

func (s *distributionService) Create(ctx context.Context, req CreateRequest) (*repo.Distribution, error) {
	if strings.TrimSpace(req.DistributionNumber) == "" ||
		strings.TrimSpace(req.ReceiverFirstName) == "" ||
		strings.TrimSpace(req.ReceiverLastName) == "" ||
		strings.TrimSpace(req.Establishment) == "" {
		return nil, ErrMissingFields
	}
	if req.NumberOfBags < 1 {
		req.NumberOfBags = 1
	}
	if req.IssuedAt.IsZero() {
		req.IssuedAt = time.Now()
	}

	var created *repo.Distribution
	err := database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		bag, err := tx.BloodBag.Get(ctx, req.BagID)
		if err != nil {
			if repo.IsNotFound(err) {
				return ErrBagNotFound
			}
			return fmt.Errorf("get bag: %w", err)
		}
		if bag.IsDistributed {
			return ErrBagAlreadyDistributed
		}

		created, err = tx.Distribution.Create().
			SetDistributionNumber(strings.TrimSpace(req.DistributionNumber)).
			SetReceiverFirstName(strings.TrimSpace(req.ReceiverFirstName)).
			SetReceiverLastName(strings.TrimSpace(req.ReceiverLastName)).
			SetReceiverAge(req.ReceiverAge).
			SetReceiverSex(req.ReceiverSex).
			SetEstablishment(strings.TrimSpace(req.Establishment)).
			SetRequestedBloodGroup(req.RequestedBloodGroup).
			SetNumberOfBags(req.NumberOfBags).
			SetService(req.Service).
			SetCarrierName(req.CarrierName).
			SetDoctorName(req.DoctorName).
			SetIssuedAt(req.IssuedAt).
			SetBagbloodID(bag.ID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create distribution: %w", err)
		}

		if err := tx.BloodBag.UpdateOne(bag).SetIsDistributed(true).Exec(ctx); err != nil {
			return fmt.Errorf("mark bag distributed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *distributionService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Distribution, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u := s.db.Distribution.UpdateOne(d)

	if req.DistributionNumber != nil {
		u = u.SetDistributionNumber(*req.DistributionNumber)
	}
	if req.ReceiverFirstName != nil {
		u = u.SetReceiverFirstName(*req.ReceiverFirstName)
	}
	if req.ReceiverLastName != nil {
		u = u.SetReceiverLastName(*req.ReceiverLastName)
	}
	if req.ReceiverAge != nil {
		u = u.SetReceiverAge(*req.ReceiverAge)
	}
	if req.ReceiverSex != nil {
		u = u.SetReceiverSex(*req.ReceiverSex)
	}
	if req.Establishment != nil {
		u = u.SetEstablishment(*req.Establishment)
	}
	if req.RequestedBloodGroup != nil {
		u = u.SetRequestedBloodGroup(*req.RequestedBloodGroup)
	}
	if req.NumberOfBags != nil {
		u = u.SetNumberOfBags(*req.NumberOfBags)
	}
	if req.Service != nil {
		u = u.SetService(*req.Service)
	}
	if req.CarrierName != nil {
		u = u.SetCarrierName(*req.CarrierName)
	}
	if req.DoctorName != nil {
		u = u.SetDoctorName(*req.DoctorName)
	}
	if req.IssuedAt != nil {
		u = u.SetIssuedAt(*req.IssuedAt)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update distribution: %w", err)
	}
	return updated, nil
}

func (s *distributionService) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		d, err := tx.Distribution.Get(ctx, id)
		if err != nil {
			if repo.IsNotFound(err) {
				return ErrDistributionNotFound
			}
			return fmt.Errorf("get distribution: %w", err)
		}

		if err := tx.Distribution.DeleteOne(d).Exec(ctx); err != nil {
			return fmt.Errorf("delete distribution: %w", err)
		}

		// Return the bag to stock.
		if err := tx.BloodBag.UpdateOneID(d.BagbloodID).SetIsDistributed(false).Exec(ctx); err != nil {
			return fmt.Errorf("unmark bag distributed: %w", err)
		}
		return nil
	})
}

func (s *distributionService) TotalCount(ctx context.Context) (int, error) {
	n, err := s.db.Distribution.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count distributions: %w", err)
	}
	return n, nil
}
