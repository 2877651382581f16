package bloodbag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hemobank/hemobank_backend/internal/repo"
	entbag "github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	"github.com/hemobank/hemobank_backend/pkg/database"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

// ShelfLifeDays is the whole-blood shelf life used to derive expire_date
// from collection_date.
const ShelfLifeDays = 35

// AlertHorizonDays bounds the expiring-soon window: a bag alerts when its
// expiry falls within [today, today+AlertHorizonDays], dates inclusive.
const AlertHorizonDays = 5

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	BagNumber      string
	BloodGroup     string
	DonationID     string
	BagType        string
	Weight         float64
	CollectionDate time.Time
	HbsAg          string
	Hcv            string
	Hiv            string
	Tpha           string
	AntiHtlv       string
}

type UpdateRequest struct {
	BagNumber      *string
	BloodGroup     *string
	DonationID     *string
	BagType        *string
	Weight         *float64
	CollectionDate *time.Time
	HbsAg          *string
	Hcv            *string
	Hiv            *string
	Tpha           *string
	AntiHtlv       *string
	IsDistributed  *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]*repo.BloodBag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.BloodBag, error)

	// Create registers a bag under the authenticated principal carried by
	// ctx. Returns reqctx.ErrNoPrincipal when ctx carries none.
	Create(ctx context.Context, req CreateRequest) (*repo.BloodBag, error)

	// Update applies only the fields whose pointers are set. A change to
	// collection_date recomputes expire_date; any other partial update
	// leaves the stored expire_date untouched.
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.BloodBag, error)

	// Delete refuses while derived components or distribution records
	// still reference the bag.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExpiringAlerts lists undistributed bags whose expiry falls within
	// the alert window, soonest first.
	ExpiringAlerts(ctx context.Context) ([]*repo.BloodBag, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bagService struct {
	db  *repo.Client
	now func() time.Time
}

func New(db *repo.Client) Service {
	return &bagService{db: db, now: time.Now}
}

// ExpireDate derives a bag's expiry from its collection date.
func ExpireDate(collection time.Time) time.Time {
	return collection.AddDate(0, 0, ShelfLifeDays)
}

// AlertWindow returns the [from, to) bounds of the expiring-soon window for
// the given clock reading. from is the start of today; to is the start of the
// day after today+AlertHorizonDays, so the last alerting day is included in
// full.
func AlertWindow(now time.Time) (from, to time.Time) {
	from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to = from.AddDate(0, 0, AlertHorizonDays+1)
	return from, to
}

func (s *bagService) List(ctx context.Context) ([]*repo.BloodBag, error) {
	bags, err := s.db.BloodBag.Query().
		Order(entbag.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blood bags: %w", err)
	}
	return bags, nil
}

func (s *bagService) GetByID(ctx context.Context, id uuid.UUID) (*repo.BloodBag, error) {
	b, err := s.db.BloodBag.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBagNotFound
		}
		return nil, fmt.Errorf("get blood bag: %w", err)
	}
	return b, nil
}

func (s *bagService) Create(ctx context.Context, req CreateRequest) (*repo.BloodBag, error) {
	principal, err := reqctx.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	bagNumber := strings.TrimSpace(req.BagNumber)
	if bagNumber == "" || strings.TrimSpace(req.BloodGroup) == "" || req.CollectionDate.IsZero() {
		return nil, ErrMissingFields
	}

	exists, err := s.db.BloodBag.Query().
		Where(entbag.BagNumber(bagNumber)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check bag number: %w", err)
	}
	if exists {
		return nil, ErrBagNumberExists
	}

	b, err := s.db.BloodBag.Create().
		SetBagNumber(bagNumber).
		SetBloodGroup(strings.TrimSpace(req.BloodGroup)).
		SetDonationID(strings.TrimSpace(req.DonationID)).
		SetBagType(strings.TrimSpace(req.BagType)).
		SetWeight(req.Weight).
		SetCollectionDate(req.CollectionDate).
		SetExpireDate(ExpireDate(req.CollectionDate)).
		SetHbsAg(req.HbsAg).
		SetHcv(req.Hcv).
		SetHiv(req.Hiv).
		SetTpha(req.Tpha).
		SetAntiHtlv(req.AntiHtlv).
		SetBiologistID(principal.ID).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrBagNumberExists
		}
		return nil, fmt.Errorf("create blood bag: %w", err)
	}
	return b, nil
}

func (s *bagService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.BloodBag, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u := s.db.BloodBag.UpdateOne(b)

	if req.BagNumber != nil {
		bagNumber := strings.TrimSpace(*req.BagNumber)
		if bagNumber != b.BagNumber {
			taken, err := s.db.BloodBag.Query().
				Where(entbag.BagNumber(bagNumber), entbag.IDNEQ(id)).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("check bag number: %w", err)
			}
			if taken {
				return nil, ErrBagNumberExists
			}
		}
		u = u.SetBagNumber(bagNumber)
	}
	if req.BloodGroup != nil {
		u = u.SetBloodGroup(*req.BloodGroup)
	}
	if req.DonationID != nil {
		u = u.SetDonationID(*req.DonationID)
	}
	if req.BagType != nil {
		u = u.SetBagType(*req.BagType)
	}
	if req.Weight != nil {
		u = u.SetWeight(*req.Weight)
	}
	if req.CollectionDate != nil {
		u = u.SetCollectionDate(*req.CollectionDate).
			SetExpireDate(ExpireDate(*req.CollectionDate))
	}
	if req.HbsAg != nil {
		u = u.SetHbsAg(*req.HbsAg)
	}
	if req.Hcv != nil {
		u = u.SetHcv(*req.Hcv)
	}
	if req.Hiv != nil {
		u = u.SetHiv(*req.Hiv)
	}
	if req.Tpha != nil {
		u = u.SetTpha(*req.Tpha)
	}
	if req.AntiHtlv != nil {
		u = u.SetAntiHtlv(*req.AntiHtlv)
	}
	if req.IsDistributed != nil {
		u = u.SetIsDistributed(*req.IsDistributed)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrBagNumberExists
		}
		return nil, fmt.Errorf("update blood bag: %w", err)
	}
	return updated, nil
}

func (s *bagService) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		b, err := tx.BloodBag.Get(ctx, id)
		if err != nil {
			if repo.IsNotFound(err) {
				return ErrBagNotFound
			}
			return fmt.Errorf("get blood bag: %w", err)
		}

		hasComponents, err := b.QueryComponents().Exist(ctx)
		if err != nil {
			return fmt.Errorf("check components: %w", err)
		}
		if hasComponents {
			return ErrBagHasComponents
		}

		hasDistributions, err := b.QueryDistributions().Exist(ctx)
		if err != nil {
			return fmt.Errorf("check distributions: %w", err)
		}
		if hasDistributions {
			return ErrBagHasDistributions
		}

		return tx.BloodBag.DeleteOne(b).Exec(ctx)
	})
}

func (s *bagService) ExpiringAlerts(ctx context.Context) ([]*repo.BloodBag, error) {
	from, to := AlertWindow(s.now())

	bags, err := s.db.BloodBag.Query().
		Where(
			entbag.IsDistributed(false),
			entbag.ExpireDateGTE(from),
			entbag.ExpireDateLT(to),
		).
		Order(entbag.ByExpireDate(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expiring bags: %w", err)
	}
	return bags, nil
}
