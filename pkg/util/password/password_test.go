package password

import (
	"strings"
	"testing"
)

func TestHashFormat(t *testing.T) {
	hash, err := Hash("correcthorsebatterystaple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=") {
		t.Errorf("Hash() format invalid, got %s", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 6 {
		t.Errorf("Hash() expected 6 PHC parts, got %d", len(parts))
	}
}

func TestVerify(t *testing.T) {
	secret := "mysecretpassword"
	hash, err := Hash(secret)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{"correct password", hash, secret, nil},
		{"wrong password", hash, "wrongpassword", ErrMismatch},
		{"empty password", hash, "", ErrMismatch},
		{"invalid hash format", "notahash", secret, ErrInvalidHash},
		{"wrong algorithm", "$argon2i$v=19$m=65536,t=3,p=2$c29tZXNhbHQ$c29tZWhhc2g", secret, ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.hash, tt.password); err != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashUniqueness(t *testing.T) {
	hash1, _ := Hash("samepassword")
	hash2, _ := Hash("samepassword")

	if hash1 == hash2 {
		t.Error("Hash() should salt: identical hashes for same password")
	}
	if !Match(hash1, "samepassword") || !Match(hash2, "samepassword") {
		t.Error("both hashes should verify")
	}
}

func TestHashWithParams(t *testing.T) {
	params := &Params{
		Memory:      32 * 1024,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}

	hash, err := HashWithParams("testpassword", params)
	if err != nil {
		t.Fatalf("HashWithParams() error = %v", err)
	}

	if !strings.Contains(hash, "m=32768,t=2,p=1") {
		t.Errorf("HashWithParams() params not encoded: %s", hash)
	}
	if err := Verify(hash, "testpassword"); err != nil {
		t.Errorf("Verify() failed for custom params: %v", err)
	}
}
