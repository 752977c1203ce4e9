//go:build unit

package converter_test

import (
	"encoding/json"
	"testing"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/catalog"
	"storefront-cart/internal/domain/discount"
	"storefront-cart/internal/infra/converter"
	"storefront-cart/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(cart.LineItem{}, catalog.Product{}, catalog.Variant{}),
	cmpopts.EquateEmpty(),
}

func sampleCart(t *testing.T) *cart.Cart {
	t.Helper()
	product := builder.NewProductBuilder().
		WithPrice("120.00").
		WithOriginalPrice("150.00").
		WithVariant("Storage", "512GB", "49.99").
		MustBuild()
	variant := product.Variants()[0]

	c := cart.New(cart.DefaultPricingPolicy())
	c.AddItem(product, 2, &variant)
	c.AddItem(builder.NewProductBuilder().WithPrice("9.50").MustBuild(), 1, nil)
	require.True(t, c.ApplyDiscount(discount.NewDefaultResolver(), "save10"))
	return c
}

func TestCartEnvelope(t *testing.T) {
	t.Run("永続化形式", func(t *testing.T) {
		data, err := converter.MarshalCart(sampleCart(t))
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.EqualValues(t, 0, raw["version"])
		state, ok := raw["state"].(map[string]any)
		require.True(t, ok)
		assert.Len(t, state, 1, "only the cart is persisted")
		stored, ok := state["cart"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "SAVE10", stored["discountCode"])
		assert.Equal(t, "34.95", stored["discountAmount"])
		assert.Equal(t, "349.48", stored["subtotal"])
	})

	t.Run("往復で同じカートに戻る", func(t *testing.T) {
		original := sampleCart(t)

		data, err := converter.MarshalCart(original)
		require.NoError(t, err)
		restored, err := converter.UnmarshalCart(data, cart.DefaultPricingPolicy())
		require.NoError(t, err)

		assert.Equal(t, original.ID(), restored.ID())
		if diff := cmp.Diff(original.Items(), restored.Items(), cmpOpts...); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(original.Totals(), restored.Totals()); diff != "" {
			t.Errorf("totals mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(original.Discount(), restored.Discount()); diff != "" {
			t.Errorf("discount mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("割引なしのカート", func(t *testing.T) {
		c := cart.New(cart.DefaultPricingPolicy())

		data, err := converter.MarshalCart(c)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "discountCode")

		restored, err := converter.UnmarshalCart(data, cart.DefaultPricingPolicy())
		require.NoError(t, err)
		assert.Nil(t, restored.Discount())
		assert.True(t, restored.IsEmpty())
	})

	t.Run("壊れたデータ", func(t *testing.T) {
		cases := map[string]string{
			"不正なJSON":  `{"state":`,
			"未知のバージョン": `{"state":{"cart":{"id":"00000000-0000-0000-0000-000000000001","items":[],"subtotal":"0","tax":"0","shipping":"0","total":"0"}},"version":7}`,
			"不正なID":    `{"state":{"cart":{"id":"nope","items":[],"subtotal":"0","tax":"0","shipping":"0","total":"0"}},"version":0}`,
			"不正な金額":    `{"state":{"cart":{"id":"00000000-0000-0000-0000-000000000001","items":[],"subtotal":"x","tax":"0","shipping":"0","total":"0"}},"version":0}`,
		}
		for name, input := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := converter.UnmarshalCart([]byte(input), cart.DefaultPricingPolicy())
				require.Error(t, err)
			})
		}
	})
}
