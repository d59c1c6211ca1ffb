package assemble

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"order-mapper/internal/coerce"
	"order-mapper/internal/domain"
)

// CopyRewardPoints returns a step that sets OrderRewardPoints from the raw
// record's order_reward_points key.
//
// The lookup is exact and case-sensitive against the raw record, not the
// normalized one: an upstream that starts sending ORDER_REWARD_POINTS will
// silently produce zero here.
func CopyRewardPoints(rec map[string]any) func(domain.OrderDetail) domain.OrderDetail {
	points := coerce.ToInt(rec[rewardPointsKey])

	return func(o domain.OrderDetail) domain.OrderDetail {
		o.OrderRewardPoints = points
		return o
	}
}

// InjectMembershipCost prices the first membership line at its retail price
// and adds that price to the order subtotal and total. Upstream totals never
// include the membership fee.
func InjectMembershipCost(o domain.OrderDetail) domain.OrderDetail {
	i := slices.IndexFunc(o.OrderLines, func(l domain.OrderLineItem) bool {
		return l.ProductTypeID.IsMembership()
	})
	if i < 0 {
		return o
	}

	lines := slices.Clone(o.OrderLines)
	retail := lines[i].RetailUnitPrice

	lines[i].PurchaseUnitPrice = retail
	lines[i].ExtendedPurchasePrice = retail
	lines[i].VipUnitPrice = retail

	o.OrderLines = lines
	o.Subtotal = o.Subtotal.Add(retail)
	o.Total = o.Total.Add(retail)

	return o
}

// AggregateVIPDiscount sets VipDiscount to the sum of retail minus VIP unit
// price over every line. The sum is not clamped and may be negative.
func AggregateVIPDiscount(o domain.OrderDetail) domain.OrderDetail {
	sum := decimal.Zero
	for _, l := range o.OrderLines {
		sum = sum.Add(l.RetailUnitPrice.Sub(l.VipUnitPrice))
	}

	o.VipDiscount = sum

	return o
}

// NetShipping subtracts the shipping discount from shipping. Absent values
// count as zero.
func NetShipping(o domain.OrderDetail) domain.OrderDetail {
	o.Shipping = o.Shipping.Sub(o.ShippingDiscount)
	return o
}

// RegroupBundles moves bundle children under the bundle parent sharing their
// group key and drops them from the top-level lines.
//
// Children are ordered by DefaultProductCategoryID, highest first, keeping
// upstream order on ties. A child claimed by an earlier parent is not given
// to a later one, so every line ends up either top-level or under exactly
// one parent. Claims are tracked by line position, so lines sharing an
// OrderLineID (e.g. both missing it) are still told apart. Every returned
// line, nested or not, has a non-nil BundleItems.
func RegroupBundles(o domain.OrderDetail) domain.OrderDetail {
	lines := slices.Clone(o.OrderLines)
	claimed := make([]bool, len(lines))

	for i := range lines {
		parent := &lines[i]
		if !parent.ProductTypeID.IsBundleParent() {
			continue
		}

		var picks []int

		for j, l := range o.OrderLines {
			if !claimed[j] && l.ProductTypeID.IsBundleChild() && l.GroupKey == parent.GroupKey {
				picks = append(picks, j)
			}
		}

		slices.SortStableFunc(picks, func(a, b int) int {
			return cmp.Compare(o.OrderLines[b].DefaultProductCategoryID, o.OrderLines[a].DefaultProductCategoryID)
		})

		children := make([]domain.OrderLineItem, 0, len(picks))

		for _, j := range picks {
			claimed[j] = true
			children = append(children, withoutBundle(o.OrderLines[j]))
		}

		parent.BundleItems = children
	}

	kept := make([]domain.OrderLineItem, 0, len(lines))

	for i, l := range lines {
		if claimed[i] {
			continue
		}

		kept = append(kept, withoutBundle(l))
	}

	o.OrderLines = kept

	return o
}

// withoutBundle gives a line an empty, non-nil BundleItems unless it already
// holds children.
func withoutBundle(l domain.OrderLineItem) domain.OrderLineItem {
	if l.BundleItems == nil {
		l.BundleItems = []domain.OrderLineItem{}
	}

	return l
}
