package reqctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestPrincipalFromContext(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		setupCtx func() context.Context
		want     Principal
		wantErr  bool
	}{
		{
			name: "principal present",
			setupCtx: func() context.Context {
				return WithPrincipal(context.Background(), Principal{ID: id, Role: RoleBiologist})
			},
			want: Principal{ID: id, Role: RoleBiologist},
		},
		{
			name:     "empty context",
			setupCtx: context.Background,
			wantErr:  true,
		},
		{
			name: "nil principal id",
			setupCtx: func() context.Context {
				return WithPrincipal(context.Background(), Principal{Role: RoleChefService})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrincipalFromContext(tt.setupCtx())
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("PrincipalFromContext() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleBiologist.Valid() || !RoleChefService.Valid() {
		t.Error("known roles must be valid")
	}
	if Role("admin").Valid() {
		t.Error("unknown role must be invalid")
	}
}
