package pricing

import (
	"math"
	"testing"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellerPrice(t *testing.T) {
	price, err := SellerPrice(200, 25)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, price, 1e-9)
}

func TestSellerPrice_ZeroPercentIsNoOp(t *testing.T) {
	price, err := SellerPrice(99.99, 0)
	require.NoError(t, err)
	assert.InDelta(t, 99.99, price, 1e-9)
}

func TestSellerPrice_FullDiscount(t *testing.T) {
	price, err := SellerPrice(150, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, price, 1e-9)
}

func TestValidatePercent_OutOfRange(t *testing.T) {
	assert.ErrorIs(t, ValidatePercent(-1), ErrPercentOutOfRange)
	assert.ErrorIs(t, ValidatePercent(100.01), ErrPercentOutOfRange)
	assert.ErrorIs(t, ValidatePercent(math.NaN()), ErrPercentOutOfRange)
	assert.NoError(t, ValidatePercent(0))
	assert.NoError(t, ValidatePercent(100))
}

func TestAdminPrice_RejectsInvalidResult(t *testing.T) {
	_, err := AdminPrice(math.Inf(1), 10)
	assert.ErrorIs(t, err, ErrInvalidComputation)

	_, err = AdminPrice(math.NaN(), 10)
	assert.ErrorIs(t, err, ErrInvalidComputation)

	_, err = AdminPrice(-50, 10)
	assert.ErrorIs(t, err, ErrInvalidComputation)
}

func TestSalePrice_ComputedFromMRP(t *testing.T) {
	// A 20% sale on MRP 100 is 80 regardless of any admin discount layer.
	price, err := SalePrice(100, 20)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, price, 1e-9)
}

func TestProductAdminBase(t *testing.T) {
	sellerPct := 10.0
	sellerPrice := 90.0
	product := &entity.Product{
		MRP:                   100,
		SellerDiscountApplied: &sellerPct,
		SellerDiscounted:      &sellerPrice,
	}

	// Seller-discounted layer is authoritative when targeted and present.
	assert.InDelta(t, 90.0, ProductAdminBase(product, entity.DiscountTypeSellerDiscounted), 1e-9)
	// Type MRP ignores the seller layer.
	assert.InDelta(t, 100.0, ProductAdminBase(product, entity.DiscountTypeMRP), 1e-9)

	// Without a seller discount, both types fall back to MRP.
	plain := &entity.Product{MRP: 100}
	assert.InDelta(t, 100.0, ProductAdminBase(plain, entity.DiscountTypeSellerDiscounted), 1e-9)
}

func TestBundleAdminBase(t *testing.T) {
	sellerPct := 20.0
	sellerPrice := 160.0
	bundle := &entity.Bundle{
		MRP:              200,
		SellerDiscount:   &sellerPct,
		SellerDiscounted: &sellerPrice,
	}

	assert.InDelta(t, 160.0, BundleAdminBase(bundle, entity.DiscountTypeSellerDiscounted), 1e-9)
	assert.InDelta(t, 200.0, BundleAdminBase(bundle, entity.DiscountTypeMRP), 1e-9)
}

func TestAdminPriceFormula(t *testing.T) {
	// adminDiscountedPrice == base * (1 - pct/100) within floating tolerance.
	for _, tc := range []struct {
		base, pct float64
	}{
		{100, 15},
		{90, 33.3},
		{0.01, 99.9},
		{1234.56, 50},
	} {
		price, err := AdminPrice(tc.base, tc.pct)
		require.NoError(t, err)
		assert.InDelta(t, tc.base*(1-tc.pct/100), price, 1e-9)
	}
}
