package assemble

import (
	"bytes"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"order-mapper/internal/domain"
)

func loadRecord(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, yaml.Unmarshal(data, &rec))

	return rec
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func lineIDs[L any](lines []L, id func(L) int64) []int64 {
	out := make([]int64, 0, len(lines))
	for _, l := range lines {
		out = append(out, id(l))
	}

	return out
}

func detailLineID(l domain.OrderLineItem) int64 { return l.OrderLineID }

func TestAssembler_OrderDetail_Fixture(t *testing.T) {
	o, err := New().OrderDetail(loadRecord(t, "testdata/order_detail.yaml"))
	require.NoError(t, err)

	assert.Equal(t, int64(880112), o.OrderID)
	assert.Equal(t, int64(320), o.OrderRewardPoints)
	assert.Equal(t, int64(10), o.RewardPoints)

	// membership line 1 retail 49.99 is charged on top of upstream totals
	assertDecimal(t, "199.99", o.Subtotal)
	assertDecimal(t, "222.37", o.Total)

	// (100-80) + (49.99-49.99) + (50-50) + three children at zero
	assertDecimal(t, "20", o.VipDiscount)

	assertDecimal(t, "10", o.Shipping)

	require.NotNil(t, o.ShippingAddress)
	assert.Equal(t, "Denver", o.ShippingAddress.City)
	assert.True(t, o.ShippingAddress.IsDefault)
	require.NotNil(t, o.BillingAddress)
	assert.Equal(t, "Boulder", o.BillingAddress.City)
	require.NotNil(t, o.PaymentInfo)
	assert.Equal(t, "VISA", o.PaymentInfo.CardType)

	require.Equal(t, []int64{1, 2, 3, 6}, lineIDs(o.OrderLines, detailLineID), spew.Sdump(o.OrderLines))

	membership := o.OrderLines[0]
	assertDecimal(t, "49.99", membership.PurchaseUnitPrice)
	assertDecimal(t, "49.99", membership.ExtendedPurchasePrice)
	assertDecimal(t, "49.99", membership.VipUnitPrice)

	require.NotNil(t, o.OrderLines[1].Discount)
	assert.True(t, o.OrderLines[1].Discount.RefundsAllowed)

	bundle := o.OrderLines[2]
	assert.Equal(t, []int64{5, 4}, lineIDs(bundle.BundleItems, detailLineID))
	assert.Empty(t, o.OrderLines[3].BundleItems)

	require.Len(t, o.OrderLineDiscounts, 1)
	assert.True(t, o.OrderLineDiscounts[0].FinalSale)
	require.Len(t, o.Tracking, 1)
	assert.Equal(t, "1Z0001", o.Tracking[0].TrackingNumber)
}

func TestAssembler_OrderDetail_WithoutEnvelope(t *testing.T) {
	o, err := New().OrderDetail(map[string]any{
		"order_id":            12,
		"shipping":            15,
		"shipping_discount":   5,
		"order_reward_points": "40",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), o.OrderID)
	assertDecimal(t, "10", o.Shipping)
	assert.Equal(t, int64(40), o.OrderRewardPoints)
}

func TestAssembler_OrderDetail_EnvelopeAsSequence(t *testing.T) {
	o, err := New().OrderDetail(map[string]any{
		"order_detail": []any{map[string]any{"order_id": 7, "order_reward_points": 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), o.OrderID)
	assert.Equal(t, int64(3), o.OrderRewardPoints)
}

func TestAssembler_OrderDetail_RewardPointsKeyIsCaseSensitive(t *testing.T) {
	o, err := New().OrderDetail(map[string]any{"ORDER_ID": 1, "ORDER_REWARD_POINTS": 500})
	require.NoError(t, err)

	assert.Equal(t, int64(1), o.OrderID)
	assert.Zero(t, o.OrderRewardPoints)
}

func TestAssembler_OrderDetail_UpperCaseSourceStillMaps(t *testing.T) {
	o, err := New().OrderDetail(map[string]any{
		"ORDER_ID": 3,
		"ORDER_LINES": []any{
			map[string]any{"ORDER_LINE_ID": 1, "PRODUCT_TYPE_ID": 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), o.OrderID)
	require.Len(t, o.OrderLines, 1)
	assert.Equal(t, domain.ProductTypeItem, o.OrderLines[0].ProductTypeID)
}

func TestAssembler_NilRecord(t *testing.T) {
	_, err := New().OrderDetail(nil)
	require.ErrorIs(t, err, ErrNilRecord)

	_, err = New().OrderDetail(map[string]any{"order_detail": []any{}})
	require.ErrorIs(t, err, ErrNilRecord)

	_, err = New().OrderSummary(nil)
	require.ErrorIs(t, err, ErrNilRecord)
}

func TestAssembler_OrderSummary(t *testing.T) {
	s, err := New().OrderSummary(map[string]any{
		"ORDER_ID":                55,
		"SUBTOTAL":                "100.00",
		"TOTAL":                   "108.00",
		"TARIFF_SURCHARGE_AMOUNT": "3.50",
		"ORDER_LINES": []any{
			map[string]any{"ORDER_LINE_ID": 1, "PRODUCT_TYPE_ID": 1, "RETAIL_UNIT_PRICE": 60, "VIP_UNIT_PRICE": 40},
			map[string]any{"ORDER_LINE_ID": 2, "PRODUCT_TYPE_ID": 2, "RETAIL_UNIT_PRICE": "49.99"},
		},
		"OFFERS": []any{"keep", "as", "is"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(55), s.OrderID)
	assertDecimal(t, "146.49", s.Subtotal)
	assertDecimal(t, "157.99", s.Total)
	assertDecimal(t, "49.99", s.OrderLines[1].VipUnitPrice)
	assertDecimal(t, "40", s.OrderLines[0].VipUnitPrice)
	assert.Equal(t, []any{"keep", "as", "is"}, s.Offers)
}

func TestAssembler_OrderSummary_LowerCaseInputStillMaps(t *testing.T) {
	s, err := New().OrderSummary(map[string]any{"order_id": 9, "subtotal": 5})
	require.NoError(t, err)

	assert.Equal(t, int64(9), s.OrderID)
	assertDecimal(t, "5", s.Subtotal)
}

func TestAssembler_ConcurrentUse(t *testing.T) {
	a := New()
	raw := loadRecord(t, "testdata/order_detail.yaml")

	var wg sync.WaitGroup

	results := make([]domain.OrderDetail, 8)
	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			o, err := a.OrderDetail(raw)
			assert.NoError(t, err)

			results[i] = o
		}(i)
	}

	wg.Wait()

	for _, o := range results {
		assertDecimal(t, "199.99", o.Subtotal)
		assertDecimal(t, "10", o.Shipping)
		assert.Len(t, o.OrderLines, 4)
	}
}

func TestAssembler_Logging(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := New(WithLogger(logger)).OrderDetail(map[string]any{"order_id": 31})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "step=inject_membership_cost")
	assert.Contains(t, out, "step=regroup_bundles")
	assert.Contains(t, out, "order detail assembled")
	assert.Contains(t, out, "order_id=31")
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	a := New(WithLogger(nil))
	require.NotNil(t, a.logger)

	_, err := a.OrderSummary(map[string]any{})
	assert.NoError(t, err)
}

func TestDetailSteps_Order(t *testing.T) {
	var names []string
	for _, s := range DetailSteps(map[string]any{}) {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{
		"copy_reward_points",
		"inject_membership_cost",
		"aggregate_vip_discount",
		"net_shipping",
		"regroup_bundles",
	}, names)

	names = nil
	for _, s := range SummarySteps() {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{"inject_membership_cost", "net_tariff_surcharge"}, names)
}
