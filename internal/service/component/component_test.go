package component

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hemobank/hemobank_backend/internal/repo"
	entcomponent "github.com/hemobank/hemobank_backend/internal/repo/component"
	"github.com/hemobank/hemobank_backend/internal/repo/enttest"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestShelfLifeDays(t *testing.T) {
	tests := []struct {
		typ  entcomponent.Type
		want int
	}{
		{entcomponent.TypeCps, 5},
		{entcomponent.TypePfc, 365},
		{entcomponent.TypeCg, 42},
		{entcomponent.Type("plasma"), 35},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := ShelfLifeDays(tt.typ); got != tt.want {
				t.Errorf("ShelfLifeDays(%q) = %d, want %d", tt.typ, got, tt.want)
			}
		})
	}
}

func TestExpireDate(t *testing.T) {
	collection := date(2024, time.January, 1)

	tests := []struct {
		name string
		typ  entcomponent.Type
		want time.Time
	}{
		{"platelets expire fast", entcomponent.TypeCps, date(2024, time.January, 6)},
		{"plasma expires in a year", entcomponent.TypePfc, date(2024, time.December, 31)},
		{"red cells", entcomponent.TypeCg, date(2024, time.February, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpireDate(collection, tt.typ); !got.Equal(tt.want) {
				t.Errorf("ExpireDate(%v, %q) = %v, want %v", collection, tt.typ, got, tt.want)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	for _, valid := range []string{"cps", "pfc", "cg"} {
		if _, err := parseType(valid); err != nil {
			t.Errorf("parseType(%q) error = %v, want nil", valid, err)
		}
	}

	for _, invalid := range []string{"", "CPS", "whole", "plasma"} {
		if _, err := parseType(invalid); err != ErrInvalidComponentType {
			t.Errorf("parseType(%q) error = %v, want ErrInvalidComponentType", invalid, err)
		}
	}
}

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedBag(t *testing.T, client *repo.Client) *repo.BloodBag {
	t.Helper()
	ctx := context.Background()

	bio, err := client.Biologist.Create().
		SetFirstName("Lina").
		SetLastName("Haddad").
		SetUsername("lina").
		SetEmail("lina@lab.test").
		SetPasswordHash("unused").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed biologist: %v", err)
	}

	collection := date(2024, time.March, 4)
	bag, err := client.BloodBag.Create().
		SetBagNumber("BAG-300").
		SetBloodGroup("B+").
		SetDonationID("D-300").
		SetBagType("simple").
		SetWeight(450).
		SetCollectionDate(collection).
		SetExpireDate(collection.AddDate(0, 0, 35)).
		SetHbsAg("negative").
		SetHcv("negative").
		SetHiv("negative").
		SetTpha("negative").
		SetAntiHtlv("negative").
		SetBiologistID(bio.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed blood bag: %v", err)
	}
	return bag
}

func TestCreateDerivesExpiryFromParentBag(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	bag := seedBag(t, client)

	c, err := svc.Create(ctx, CreateRequest{Type: "pfc", Weight: 220, BagID: bag.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if want := bag.CollectionDate.AddDate(0, 0, ShelfLifePfc); !c.ExpireDate.Equal(want) {
		t.Errorf("ExpireDate = %v, want %v", c.ExpireDate, want)
	}
}

func TestDeleteRefusesDistributedComponent(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	bag := seedBag(t, client)

	c, err := svc.Create(ctx, CreateRequest{Type: "cg", Weight: 280, BagID: bag.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	distributed := true
	if _, err := svc.Update(ctx, c.ID, UpdateRequest{IsDistributed: &distributed}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := svc.Delete(ctx, c.ID); !errors.Is(err, ErrComponentDistributed) {
		t.Fatalf("Delete() error = %v, want ErrComponentDistributed", err)
	}
	if _, err := svc.GetByID(ctx, c.ID); err != nil {
		t.Errorf("distributed component must survive the refused delete: %v", err)
	}

	distributed = false
	if _, err := svc.Update(ctx, c.ID, UpdateRequest{IsDistributed: &distributed}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete() after return to stock error = %v", err)
	}
}

func TestCreateUnknownParentBag(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)

	_, err := svc.Create(context.Background(), CreateRequest{Type: "cps", Weight: 60, BagID: uuid.New()})
	if !errors.Is(err, ErrParentBagNotFound) {
		t.Fatalf("Create() error = %v, want ErrParentBagNotFound", err)
	}
}
