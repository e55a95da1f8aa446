package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PackageKey identifies a shoot package in the catalog.
type PackageKey string

const (
	PackageEssential PackageKey = "essential"
	PackageSignature PackageKey = "signature"
	PackagePremiere  PackageKey = "premiere"
)

// Package is a catalog entry. Prices are fixed at definition time and are
// never taken from client input.
type Package struct {
	Key   PackageKey
	Name  string
	Price decimal.Decimal
}

var catalog = map[PackageKey]Package{
	PackageEssential: {
		Key:   PackageEssential,
		Name:  "Essential Collection",
		Price: decimal.RequireFromString("4999"),
	},
	PackageSignature: {
		Key:   PackageSignature,
		Name:  "Signature Collection",
		Price: decimal.RequireFromString("7500"),
	},
	PackagePremiere: {
		Key:   PackagePremiere,
		Name:  "Premiere Collection",
		Price: decimal.RequireFromString("12500"),
	},
}

// packageOrder keeps provisioning and docs output deterministic.
var packageOrder = []PackageKey{PackageEssential, PackageSignature, PackagePremiere}

// PackageByKey looks the key up in the catalog.
func PackageByKey(key PackageKey) (Package, error) {
	p, ok := catalog[key]
	if !ok {
		return Package{}, fmt.Errorf("%w: %q", ErrUnknownPackage, key)
	}

	return p, nil
}

// Packages returns all catalog entries in a stable order.
func Packages() []Package {
	res := make([]Package, 0, len(packageOrder))
	for _, key := range packageOrder {
		res = append(res, catalog[key])
	}

	return res
}

// Deposit is the amount invoiced up front: half the package price, rounded
// to two decimal places.
func (p Package) Deposit() decimal.Decimal {
	two := decimal.NewFromInt(2)
	return p.Price.Div(two).Round(2)
}
