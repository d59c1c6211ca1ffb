package schema

import (
	"order-mapper/internal/domain"
	"order-mapper/internal/mapping"
)

var (
	addressSchema           *mapping.Schema[domain.Address]
	paymentInfoSchema       *mapping.Schema[domain.PaymentInfo]
	trackingSchema          *mapping.Schema[domain.Tracking]
	orderLineDiscountSchema *mapping.Schema[domain.OrderLineDiscount]
	orderLineItemSchema     *mapping.Schema[domain.OrderLineItem]
	orderDetailSchema       *mapping.Schema[domain.OrderDetail]
	summaryLineSchema       *mapping.Schema[domain.SummaryLine]
	orderSummarySchema      *mapping.Schema[domain.OrderSummary]
)

// Tables are assigned in init rather than in var declarations because the
// order detail table nests itself (split orders).
func init() {
	addressSchema = buildAddress()
	paymentInfoSchema = buildPaymentInfo()
	trackingSchema = buildTracking()
	orderLineDiscountSchema = buildOrderLineDiscount()
	orderLineItemSchema = buildOrderLineItem()
	orderDetailSchema = buildOrderDetail()
	summaryLineSchema = buildSummaryLine()
	orderSummarySchema = buildOrderSummary()
}

// All describes every table, leaves first.
func All() []mapping.Table {
	return []mapping.Table{
		Address().Describe(),
		PaymentInfo().Describe(),
		Tracking().Describe(),
		OrderLineDiscount().Describe(),
		OrderLineItem().Describe(),
		OrderDetail().Describe(),
		SummaryLine().Describe(),
		OrderSummary().Describe(),
	}
}

// Lookup returns the description of the named table.
func Lookup(name string) (mapping.Table, bool) {
	for _, t := range All() {
		if t.Name == name {
			return t, true
		}
	}

	return mapping.Table{}, false
}
