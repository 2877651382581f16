package statistics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hemobank/hemobank_backend/internal/repo"
	"github.com/hemobank/hemobank_backend/internal/repo/enttest"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

func TestValidYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1999, false},
		{2000, true},
		{2024, true},
		{2100, true},
		{2101, false},
		{0, false},
		{-5, false},
	}

	for _, tt := range tests {
		if got := ValidYear(tt.year); got != tt.want {
			t.Errorf("ValidYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestYearBounds(t *testing.T) {
	from, to := YearBounds(2024)

	if want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
		t.Errorf("from = %v, want %v", from, want)
	}
	if want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC); !to.Equal(want) {
		t.Errorf("to = %v, want %v", to, want)
	}

	// A leap-year December 31st still falls inside the year.
	lastDay := time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC)
	if lastDay.Before(from) || !lastDay.Before(to) {
		t.Errorf("%v should fall inside YearBounds(2024)", lastDay)
	}
}

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestService(client *repo.Client, now time.Time) *statsService {
	return &statsService{
		db:     client,
		logger: slog.Default(),
		now:    func() time.Time { return now },
	}
}

func seedBag(t *testing.T, client *repo.Client, bagNumber string, collection, expiry time.Time, distributed bool) {
	t.Helper()
	ctx := context.Background()

	bio, err := client.Biologist.Create().
		SetFirstName("Lina").
		SetLastName("Haddad").
		SetUsername("lina-" + bagNumber).
		SetEmail(bagNumber + "@lab.test").
		SetPasswordHash("unused").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed biologist: %v", err)
	}

	_, err = client.BloodBag.Create().
		SetBagNumber(bagNumber).
		SetBloodGroup("O-").
		SetDonationID("D-" + bagNumber).
		SetBagType("simple").
		SetWeight(450).
		SetCollectionDate(collection).
		SetExpireDate(expiry).
		SetHbsAg("negative").
		SetHcv("negative").
		SetHiv("negative").
		SetTpha("negative").
		SetAntiHtlv("negative").
		SetIsDistributed(distributed).
		SetBiologistID(bio.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed blood bag: %v", err)
	}
}

func TestYearlyExpiredCountsWholeYear(t *testing.T) {
	client := newTestClient(t)
	// Clock reads well before the year under report: bags whose expiry falls
	// inside that year count as its losses even though the date is still
	// ahead of the clock.
	svc := newTestService(client, time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	day := func(m time.Month, d int) time.Time {
		return time.Date(2031, m, d, 0, 0, 0, 0, time.UTC)
	}

	seedBag(t, client, "Y-1", day(time.November, 20), day(time.December, 25), false)
	seedBag(t, client, "Y-2", day(time.November, 26), day(time.December, 31), false)
	// Expiry spills into the next year.
	seedBag(t, client, "Y-3", day(time.November, 27), time.Date(2032, time.January, 1, 0, 0, 0, 0, time.UTC), false)
	// Distributed bags are never counted as expired.
	seedBag(t, client, "Y-4", day(time.April, 27), day(time.June, 1), true)

	got, err := svc.Yearly(ctx, 2031)
	if err != nil {
		t.Fatalf("Yearly() error = %v", err)
	}
	if got.TotalExpired != 2 {
		t.Errorf("TotalExpired = %d, want 2", got.TotalExpired)
	}
	if got.TotalBags != 4 {
		t.Errorf("TotalBags = %d, want 4", got.TotalBags)
	}
	if got.Saved {
		t.Error("computed snapshot must not be marked saved")
	}
}

func TestSaveYearlyRecordsPrincipal(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(client, time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC))

	if _, err := svc.SaveYearly(context.Background(), 2024); !errors.Is(err, reqctx.ErrNoPrincipal) {
		t.Fatalf("SaveYearly() without principal error = %v, want ErrNoPrincipal", err)
	}

	chef, err := client.ChefService.Create().
		SetFirstName("Nadia").
		SetLastName("Mansour").
		SetUsername("nadia").
		SetEmail("nadia@lab.test").
		SetPasswordHash("unused").
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed chef: %v", err)
	}

	ctx := reqctx.WithPrincipal(context.Background(), reqctx.Principal{
		ID:   chef.ID,
		Role: reqctx.RoleChefService,
	})

	got, err := svc.SaveYearly(ctx, 2024)
	if err != nil {
		t.Fatalf("SaveYearly() error = %v", err)
	}
	if !got.Saved {
		t.Error("persisted snapshot must be marked saved")
	}

	row, err := client.YearlyStat.Query().Only(ctx)
	if err != nil {
		t.Fatalf("load snapshot row: %v", err)
	}
	if row.RecordedBy == nil || *row.RecordedBy != chef.ID {
		t.Errorf("RecordedBy = %v, want %v", row.RecordedBy, chef.ID)
	}
}
