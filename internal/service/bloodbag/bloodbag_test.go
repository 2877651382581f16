package bloodbag

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hemobank/hemobank_backend/internal/repo"
	entcomponent "github.com/hemobank/hemobank_backend/internal/repo/component"
	"github.com/hemobank/hemobank_backend/internal/repo/enttest"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpireDate(t *testing.T) {
	tests := []struct {
		name       string
		collection time.Time
		want       time.Time
	}{
		{
			name:       "35 days across a month boundary",
			collection: date(2024, time.January, 1),
			want:       date(2024, time.February, 5),
		},
		{
			name:       "leap february",
			collection: date(2024, time.February, 10),
			want:       date(2024, time.March, 16),
		},
		{
			name:       "across a year boundary",
			collection: date(2023, time.December, 15),
			want:       date(2024, time.January, 19),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpireDate(tt.collection); !got.Equal(tt.want) {
				t.Errorf("ExpireDate(%v) = %v, want %v", tt.collection, got, tt.want)
			}
		})
	}
}

func TestAlertWindow(t *testing.T) {
	// Mid-day clock reading; the window must still open at midnight.
	now := time.Date(2024, time.June, 10, 14, 30, 0, 0, time.UTC)

	from, to := AlertWindow(now)

	if want := date(2024, time.June, 10); !from.Equal(want) {
		t.Errorf("from = %v, want %v", from, want)
	}
	if want := date(2024, time.June, 16); !to.Equal(want) {
		t.Errorf("to = %v, want %v", to, want)
	}
}

func TestAlertWindowBounds(t *testing.T) {
	now := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	from, to := AlertWindow(now)

	inWindow := func(expiry time.Time) bool {
		return !expiry.Before(from) && expiry.Before(to)
	}

	tests := []struct {
		name   string
		expiry time.Time
		want   bool
	}{
		{"expires today", date(2024, time.June, 10), true},
		{"expires on the last alerting day", date(2024, time.June, 15), true},
		{"end of the last alerting day", time.Date(2024, time.June, 15, 23, 59, 59, 0, time.UTC), true},
		{"one day past the horizon", date(2024, time.June, 16), false},
		{"already expired yesterday", date(2024, time.June, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inWindow(tt.expiry); got != tt.want {
				t.Errorf("inWindow(%v) = %v, want %v", tt.expiry, got, tt.want)
			}
		})
	}
}

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func principalCtx(t *testing.T, client *repo.Client) context.Context {
	t.Helper()

	bio, err := client.Biologist.Create().
		SetFirstName("Lina").
		SetLastName("Haddad").
		SetUsername("lina").
		SetEmail("lina@lab.test").
		SetPasswordHash("unused").
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed biologist: %v", err)
	}

	return reqctx.WithPrincipal(context.Background(), reqctx.Principal{
		ID:   bio.ID,
		Role: reqctx.RoleBiologist,
	})
}

func newCreateRequest(bagNumber string) CreateRequest {
	return CreateRequest{
		BagNumber:      bagNumber,
		BloodGroup:     "A+",
		DonationID:     "D-" + bagNumber,
		BagType:        "simple",
		Weight:         450,
		CollectionDate: date(2024, time.March, 4),
		HbsAg:          "negative",
		Hcv:            "negative",
		Hiv:            "negative",
		Tpha:           "negative",
		AntiHtlv:       "negative",
	}
}

func TestCreateRequiresPrincipal(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)

	_, err := svc.Create(context.Background(), newCreateRequest("BAG-200"))
	if !errors.Is(err, reqctx.ErrNoPrincipal) {
		t.Fatalf("Create() error = %v, want ErrNoPrincipal", err)
	}
}

func TestCreatePersistsDerivedExpiry(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := principalCtx(t, client)

	bag, err := svc.Create(ctx, newCreateRequest("BAG-201"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if want := date(2024, time.April, 8); !bag.ExpireDate.Equal(want) {
		t.Errorf("ExpireDate = %v, want %v", bag.ExpireDate, want)
	}

	if _, err := svc.Create(ctx, newCreateRequest("BAG-201")); !errors.Is(err, ErrBagNumberExists) {
		t.Errorf("duplicate Create() error = %v, want ErrBagNumberExists", err)
	}
}

func TestDeleteGuards(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := principalCtx(t, client)

	withComponent, err := svc.Create(ctx, newCreateRequest("BAG-202"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_, err = client.Component.Create().
		SetType(entcomponent.TypeCg).
		SetWeight(280).
		SetExpireDate(withComponent.CollectionDate.AddDate(0, 0, 42)).
		SetBagbloodID(withComponent.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed component: %v", err)
	}

	withDistribution, err := svc.Create(ctx, newCreateRequest("BAG-203"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_, err = client.Distribution.Create().
		SetDistributionNumber("DIST-203").
		SetReceiverFirstName("Samir").
		SetReceiverLastName("Benali").
		SetReceiverAge(54).
		SetReceiverSex("M").
		SetEstablishment("CHU Central").
		SetRequestedBloodGroup("A+").
		SetNumberOfBags(1).
		SetService("surgery").
		SetCarrierName("A. Karim").
		SetDoctorName("Dr. Saidi").
		SetIssuedAt(date(2024, time.March, 10)).
		SetBagbloodID(withDistribution.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed distribution: %v", err)
	}

	clean, err := svc.Create(ctx, newCreateRequest("BAG-204"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(ctx, withComponent.ID); !errors.Is(err, ErrBagHasComponents) {
		t.Errorf("Delete(bag with component) error = %v, want ErrBagHasComponents", err)
	}
	if err := svc.Delete(ctx, withDistribution.ID); !errors.Is(err, ErrBagHasDistributions) {
		t.Errorf("Delete(bag with distribution) error = %v, want ErrBagHasDistributions", err)
	}

	if err := svc.Delete(ctx, clean.ID); err != nil {
		t.Fatalf("Delete(clean bag) error = %v", err)
	}
	if _, err := svc.GetByID(ctx, clean.ID); !errors.Is(err, ErrBagNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrBagNotFound", err)
	}

	// The guarded bags survived the refused deletes.
	if _, err := svc.GetByID(ctx, withComponent.ID); err != nil {
		t.Errorf("guarded bag must survive: %v", err)
	}
	if _, err := svc.GetByID(ctx, withDistribution.ID); err != nil {
		t.Errorf("guarded bag must survive: %v", err)
	}
}
