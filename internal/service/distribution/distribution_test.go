package distribution

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hemobank/hemobank_backend/internal/repo"
	"github.com/hemobank/hemobank_backend/internal/repo/enttest"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedBag(t *testing.T, client *repo.Client, bagNumber string) *repo.BloodBag {
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

	collection := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	bag, err := client.BloodBag.Create().
		SetBagNumber(bagNumber).
		SetBloodGroup("O+").
		SetDonationID("D-" + bagNumber).
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

func newCreateRequest(bagID uuid.UUID) CreateRequest {
	return CreateRequest{
		DistributionNumber:  "DIST-001",
		ReceiverFirstName:   "Samir",
		ReceiverLastName:    "Benali",
		ReceiverAge:         54,
		ReceiverSex:         "M",
		Establishment:       "CHU Central",
		RequestedBloodGroup: "O+",
		NumberOfBags:        1,
		Service:             "surgery",
		CarrierName:         "A. Karim",
		DoctorName:          "Dr. Saidi",
		IssuedAt:            time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
		BagID:               bagID,
	}
}

func TestCreateMarksBagDistributed(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	bag := seedBag(t, client, "BAG-100")

	d, err := svc.Create(ctx, newCreateRequest(bag.ID))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if d.BagbloodID != bag.ID {
		t.Errorf("distribution bound to bag %v, want %v", d.BagbloodID, bag.ID)
	}

	reloaded, err := client.BloodBag.Get(ctx, bag.ID)
	if err != nil {
		t.Fatalf("reload bag: %v", err)
	}
	if !reloaded.IsDistributed {
		t.Error("bag must be flagged distributed after Create")
	}
}

func TestCreateRefusesDistributedBag(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	bag := seedBag(t, client, "BAG-101")

	if _, err := svc.Create(ctx, newCreateRequest(bag.ID)); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	req := newCreateRequest(bag.ID)
	req.DistributionNumber = "DIST-002"
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrBagAlreadyDistributed) {
		t.Fatalf("second Create() error = %v, want ErrBagAlreadyDistributed", err)
	}

	// The refused attempt must not leave a record behind.
	n, err := svc.TotalCount(ctx)
	if err != nil {
		t.Fatalf("TotalCount() error = %v", err)
	}
	if n != 1 {
		t.Errorf("TotalCount() = %d, want 1", n)
	}
}

func TestDeleteReturnsBagToStock(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	bag := seedBag(t, client, "BAG-102")

	d, err := svc.Create(ctx, newCreateRequest(bag.ID))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.GetByID(ctx, d.ID); !errors.Is(err, ErrDistributionNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrDistributionNotFound", err)
	}

	reloaded, err := client.BloodBag.Get(ctx, bag.ID)
	if err != nil {
		t.Fatalf("reload bag: %v", err)
	}
	if reloaded.IsDistributed {
		t.Error("bag must return to stock after the distribution is deleted")
	}

	// The bag is distributable again.
	req := newCreateRequest(bag.ID)
	req.DistributionNumber = "DIST-003"
	if _, err := svc.Create(ctx, req); err != nil {
		t.Errorf("Create() after delete error = %v", err)
	}
}

func TestCreateUnknownBag(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)

	_, err := svc.Create(context.Background(), newCreateRequest(uuid.New()))
	if !errors.Is(err, ErrBagNotFound) {
		t.Fatalf("Create() error = %v, want ErrBagNotFound", err)
	}
}

func TestDeleteUnknownDistribution(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)

	if err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrDistributionNotFound) {
		t.Fatalf("Delete() error = %v, want ErrDistributionNotFound", err)
	}
}
