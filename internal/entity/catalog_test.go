package entity_test

import (
	"errors"
	"testing"

	"github.com/brightpixel/studio-api/internal/entity"
)

func TestPackage_Deposit(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name        string
		key         entity.PackageKey
		wantPrice   string
		wantDeposit string
	}{
		{
			name:        "even price halves cleanly",
			key:         entity.PackageSignature,
			wantPrice:   "7500",
			wantDeposit: "3750",
		},
		{
			name:        "odd price keeps the half cent-free",
			key:         entity.PackageEssential,
			wantPrice:   "4999",
			wantDeposit: "2499.5",
		},
		{
			name:        "premiere",
			key:         entity.PackagePremiere,
			wantPrice:   "12500",
			wantDeposit: "6250",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := entity.PackageByKey(tt.key)
			if err != nil {
				t.Fatalf("PackageByKey(%q) error: %v", tt.key, err)
			}

			if p.Price.String() != tt.wantPrice {
				t.Errorf("Price = %s, want %s", p.Price, tt.wantPrice)
			}

			if got := p.Deposit(); got.String() != tt.wantDeposit {
				t.Errorf("Deposit() = %s, want %s", got, tt.wantDeposit)
			}
		})
	}
}

func TestPackageByKey_Unknown(t *testing.T) {
	t.Parallel()

	_, err := entity.PackageByKey("platinum")
	if !errors.Is(err, entity.ErrUnknownPackage) {
		t.Errorf("PackageByKey() error = %v, want %v", err, entity.ErrUnknownPackage)
	}
}

func TestPackages_StableOrder(t *testing.T) {
	t.Parallel()

	packages := entity.Packages()
	if len(packages) != 3 {
		t.Fatalf("Packages() returned %d entries, want 3", len(packages))
	}

	want := []entity.PackageKey{entity.PackageEssential, entity.PackageSignature, entity.PackagePremiere}
	for i, p := range packages {
		if p.Key != want[i] {
			t.Errorf("Packages()[%d].Key = %q, want %q", i, p.Key, want[i])
		}
	}
}
