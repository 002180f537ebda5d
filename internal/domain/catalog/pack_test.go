//go:build unit

package catalog_test

import (
	"testing"

	"storefront-api/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVariant(productID uuid.UUID, options ...catalog.Option) *catalog.Variant {
	return catalog.NewVariant(uuid.New(), productID, uuid.New(), "SKU-TEST", 1000, options)
}

func TestClassify(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name       string
		options    []catalog.Option
		wantBase   bool
		wantMult   int
		wantErrIs  error
	}{
		{
			name:     "no pack option is a base unit",
			options:  []catalog.Option{{Type: "color", Value: "red"}},
			wantBase: true,
			wantMult: 1,
		},
		{
			name:     "no options at all is a base unit",
			options:  nil,
			wantBase: true,
			wantMult: 1,
		},
		{
			name:     "pack value 1 is a base unit",
			options:  []catalog.Option{{Type: "pack", Value: "1"}},
			wantBase: true,
			wantMult: 1,
		},
		{
			name:     "pack value 6 is a pack",
			options:  []catalog.Option{{Type: "pack", Value: "6"}},
			wantBase: false,
			wantMult: 6,
		},
		{
			name:      "non-numeric pack value fails",
			options:   []catalog.Option{{Type: "pack", Value: "six"}},
			wantErrIs: catalog.ErrInvalidPackValue,
		},
		{
			name:      "zero pack value fails",
			options:   []catalog.Option{{Type: "pack", Value: "0"}},
			wantErrIs: catalog.ErrInvalidPackValue,
		},
		{
			name:      "negative pack value fails",
			options:   []catalog.Option{{Type: "pack", Value: "-3"}},
			wantErrIs: catalog.ErrInvalidPackValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := newVariant(productID, tt.options...).Classify()
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, spec.IsBaseUnit)
			assert.Equal(t, tt.wantMult, spec.Multiplier)
		})
	}
}

func TestResolveBaseUnit(t *testing.T) {
	productID := uuid.New()

	t.Run("matches sibling with identical options minus pack", func(t *testing.T) {
		pack := newVariant(productID,
			catalog.Option{Type: "flavor", Value: "lemon"},
			catalog.Option{Type: "pack", Value: "6"},
		)
		base := newVariant(productID, catalog.Option{Type: "flavor", Value: "lemon"})
		other := newVariant(productID, catalog.Option{Type: "flavor", Value: "lime"})

		got, err := catalog.ResolveBaseUnit(pack, []*catalog.Variant{other, base})
		require.NoError(t, err)
		assert.Equal(t, base.ID(), got.ID())
	})

	t.Run("option comparison is order independent", func(t *testing.T) {
		pack := newVariant(productID,
			catalog.Option{Type: "pack", Value: "12"},
			catalog.Option{Type: "size", Value: "330ml"},
			catalog.Option{Type: "flavor", Value: "lemon"},
		)
		base := newVariant(productID,
			catalog.Option{Type: "flavor", Value: "lemon"},
			catalog.Option{Type: "size", Value: "330ml"},
		)

		got, err := catalog.ResolveBaseUnit(pack, []*catalog.Variant{base})
		require.NoError(t, err)
		assert.Equal(t, base.ID(), got.ID())
	})

	t.Run("sibling that is itself a pack never matches", func(t *testing.T) {
		pack := newVariant(productID, catalog.Option{Type: "pack", Value: "6"})
		otherPack := newVariant(productID, catalog.Option{Type: "pack", Value: "12"})

		_, err := catalog.ResolveBaseUnit(pack, []*catalog.Variant{otherPack})
		assert.ErrorIs(t, err, catalog.ErrBaseUnitNotFound)
	})

	t.Run("no qualifying sibling is a data-integrity error", func(t *testing.T) {
		pack := newVariant(productID,
			catalog.Option{Type: "flavor", Value: "lemon"},
			catalog.Option{Type: "pack", Value: "6"},
		)
		mismatched := newVariant(productID, catalog.Option{Type: "flavor", Value: "lime"})

		_, err := catalog.ResolveBaseUnit(pack, []*catalog.Variant{mismatched})
		assert.ErrorIs(t, err, catalog.ErrBaseUnitNotFound)
	})

	t.Run("base unit input is rejected", func(t *testing.T) {
		base := newVariant(productID)
		_, err := catalog.ResolveBaseUnit(base, nil)
		assert.ErrorIs(t, err, catalog.ErrNotAPack)
	})

	t.Run("deterministic for the same sibling set", func(t *testing.T) {
		pack := newVariant(productID, catalog.Option{Type: "pack", Value: "4"})
		first := newVariant(productID)
		second := newVariant(productID)
		siblings := []*catalog.Variant{first, second}

		for range 5 {
			got, err := catalog.ResolveBaseUnit(pack, siblings)
			require.NoError(t, err)
			assert.Equal(t, first.ID(), got.ID())
		}
	})
}

func TestComputePackStock(t *testing.T) {
	tests := []struct {
		name       string
		stock      int64
		multiplier int
		want       int64
	}{
		{"floors partial packs", 50, 6, 8},
		{"exact division", 48, 6, 8},
		{"stock below one pack reports zero", 5, 6, 0},
		{"zero stock", 0, 6, 0},
		{"multiplier one passes stock through", 17, 1, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ComputePackStock(tt.stock, tt.multiplier))
		})
	}

	t.Run("never rounds up", func(t *testing.T) {
		for stock := int64(0); stock < 100; stock++ {
			for mult := 2; mult <= 12; mult++ {
				got := catalog.ComputePackStock(stock, mult)
				assert.LessOrEqual(t, got*int64(mult), stock)
			}
		}
	})
}
