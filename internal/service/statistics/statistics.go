package statistics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hemobank/hemobank_backend/internal/repo"
	entbag "github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	entcomponent "github.com/hemobank/hemobank_backend/internal/repo/component"
	entyearly "github.com/hemobank/hemobank_backend/internal/repo/yearlystat"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

const (
	// MinYear and MaxYear bound the years a snapshot can describe.
	MinYear = 2000
	MaxYear = 2100

	dashboardCacheKey = "stats:dashboard"
	dashboardCacheTTL = 30 * time.Second
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type DashboardStats struct {
	InStock     int `json:"in_stock"`
	Distributed int `json:"distributed"`
}

type DetailedStats struct {
	TotalBags        int `json:"total_bags"`
	TotalCps         int `json:"total_cps"`
	TotalPfc         int `json:"total_pfc"`
	TotalCg          int `json:"total_cg"`
	TotalDistributed int `json:"total_distributed"`
	TotalExpired     int `json:"total_expired"`
}

type YearlyStats struct {
	Year         int  `json:"year"`
	TotalBags    int  `json:"total_bags"`
	TotalCps     int  `json:"total_cps"`
	TotalPfc     int  `json:"total_pfc"`
	TotalCg      int  `json:"total_cg"`
	TotalExpired int  `json:"total_expired"`
	Saved        bool `json:"saved"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	Detailed(ctx context.Context) (*DetailedStats, error)

	// Yearly returns the saved snapshot for the year verbatim when one
	// exists, otherwise computes the aggregates on the fly without
	// persisting them.
	Yearly(ctx context.Context, year int) (*YearlyStats, error)

	// SaveYearly computes and persists the snapshot, upserting by year
	// and recording the principal carried by ctx. Returns
	// reqctx.ErrNoPrincipal when ctx carries none.
	SaveYearly(ctx context.Context, year int) (*YearlyStats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type statsService struct {
	db     *repo.Client
	rdb    *goredis.Client
	logger *slog.Logger
	now    func() time.Time
}

func New(db *repo.Client, rdb *goredis.Client, logger *slog.Logger) Service {
	return &statsService{db: db, rdb: rdb, logger: logger, now: time.Now}
}

// ValidYear reports whether a snapshot year is inside the supported range.
func ValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// YearBounds returns the [from, to) timestamps covering a calendar year.
func YearBounds(year int) (from, to time.Time) {
	from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(1, 0, 0)
	return from, to
}

func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var stats DashboardStats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	today := startOfDay(s.now())

	inStock, err := s.db.BloodBag.Query().
		Where(entbag.IsDistributed(false), entbag.ExpireDateGTE(today)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count in-stock bags: %w", err)
	}

	distributed, err := s.db.BloodBag.Query().
		Where(entbag.IsDistributed(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count distributed bags: %w", err)
	}

	stats := &DashboardStats{InStock: inStock, Distributed: distributed}

	if s.rdb != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				s.logger.Warn("dashboard cache write failed", "error", err)
			}
		}
	}
	return stats, nil
}

func (s *statsService) Detailed(ctx context.Context) (*DetailedStats, error) {
	today := startOfDay(s.now())

	totalBags, err := s.db.BloodBag.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bags: %w", err)
	}

	byType, err := s.countComponentsByType(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	distributed, err := s.db.BloodBag.Query().
		Where(entbag.IsDistributed(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count distributed bags: %w", err)
	}

	expired, err := s.db.BloodBag.Query().
		Where(entbag.IsDistributed(false), entbag.ExpireDateLT(today)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count expired bags: %w", err)
	}

	return &DetailedStats{
		TotalBags:        totalBags,
		TotalCps:         byType[entcomponent.TypeCps],
		TotalPfc:         byType[entcomponent.TypePfc],
		TotalCg:          byType[entcomponent.TypeCg],
		TotalDistributed: distributed,
		TotalExpired:     expired,
	}, nil
}

func (s *statsService) Yearly(ctx context.Context, year int) (*YearlyStats, error) {
	if !ValidYear(year) {
		return nil, ErrInvalidYear
	}

	saved, err := s.db.YearlyStat.Query().
		Where(entyearly.Year(year)).
		Only(ctx)
	if err == nil {
		return &YearlyStats{
			Year:         saved.Year,
			TotalBags:    saved.TotalBags,
			TotalCps:     saved.TotalCps,
			TotalPfc:     saved.TotalPfc,
			TotalCg:      saved.TotalCg,
			TotalExpired: saved.TotalExpired,
			Saved:        true,
		}, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get yearly snapshot: %w", err)
	}

	return s.computeYearly(ctx, year)
}

func (s *statsService) SaveYearly(ctx context.Context, year int) (*YearlyStats, error) {
	if !ValidYear(year) {
		return nil, ErrInvalidYear
	}

	principal, err := reqctx.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.computeYearly(ctx, year)
	if err != nil {
		return nil, err
	}

	existing, err := s.db.YearlyStat.Query().
		Where(entyearly.Year(year)).
		Only(ctx)
	switch {
	case err == nil:
		err = s.db.YearlyStat.UpdateOne(existing).
			SetTotalBags(stats.TotalBags).
			SetTotalCps(stats.TotalCps).
			SetTotalPfc(stats.TotalPfc).
			SetTotalCg(stats.TotalCg).
			SetTotalExpired(stats.TotalExpired).
			SetRecordedBy(principal.ID).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("update yearly snapshot: %w", err)
		}
	case repo.IsNotFound(err):
		_, err = s.db.YearlyStat.Create().
			SetYear(year).
			SetTotalBags(stats.TotalBags).
			SetTotalCps(stats.TotalCps).
			SetTotalPfc(stats.TotalPfc).
			SetTotalCg(stats.TotalCg).
			SetTotalExpired(stats.TotalExpired).
			SetRecordedBy(principal.ID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create yearly snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("get yearly snapshot: %w", err)
	}

	stats.Saved = true
	return stats, nil
}

// computeYearly aggregates live inventory for a year: bags by collection
// date, components by expiry date, and undistributed bags whose expiry
// falls inside the year regardless of whether that date has passed yet.
func (s *statsService) computeYearly(ctx context.Context, year int) (*YearlyStats, error) {
	from, to := YearBounds(year)

	totalBags, err := s.db.BloodBag.Query().
		Where(entbag.CollectionDateGTE(from), entbag.CollectionDateLT(to)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bags for year: %w", err)
	}

	byType, err := s.countComponentsByType(ctx, &from, &to)
	if err != nil {
		return nil, err
	}

	expired, err := s.db.BloodBag.Query().
		Where(
			entbag.IsDistributed(false),
			entbag.ExpireDateGTE(from),
			entbag.ExpireDateLT(to),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count expired bags for year: %w", err)
	}

	return &YearlyStats{
		Year:         year,
		TotalBags:    totalBags,
		TotalCps:     byType[entcomponent.TypeCps],
		TotalPfc:     byType[entcomponent.TypePfc],
		TotalCg:      byType[entcomponent.TypeCg],
		TotalExpired: expired,
	}, nil
}

func (s *statsService) countComponentsByType(ctx context.Context, from, to *time.Time) (map[entcomponent.Type]int, error) {
	out := make(map[entcomponent.Type]int, 3)
	for _, t := range []entcomponent.Type{entcomponent.TypeCps, entcomponent.TypePfc, entcomponent.TypeCg} {
		q := s.db.Component.Query().Where(entcomponent.TypeEQ(t))
		if from != nil && to != nil {
			q = q.Where(entcomponent.ExpireDateGTE(*from), entcomponent.ExpireDateLT(*to))
		}
		n, err := q.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s components: %w", t, err)
		}
		out[t] = n
	}
	return out, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
