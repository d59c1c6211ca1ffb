package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"order-mapper/internal/domain"
	"order-mapper/internal/keys"
	"order-mapper/internal/mapping"
)

// OrderDetail returns the OrderDetail table. It nests Address, PaymentInfo,
// OrderLineItem, OrderLineDiscount, Tracking and itself.
func OrderDetail() *mapping.Schema[domain.OrderDetail] { return orderDetailSchema }

func buildOrderDetail() *mapping.Schema[domain.OrderDetail] {
	type O = domain.OrderDetail

	return &mapping.Schema[O]{
		Name: "OrderDetail",
		Case: keys.Lower,
		Fields: []mapping.Field[O]{
			mapping.Int("orderId", "order_id", func(o *O, v int64) { o.OrderID = v }),
			mapping.Int("masterOrderId", "master_order_id", func(o *O, v int64) { o.MasterOrderID = v }),
			mapping.Int("customerId", "customer_id", func(o *O, v int64) { o.CustomerID = v }),
			mapping.Int("storeGroupId", "store_group_id", func(o *O, v int64) { o.StoreGroupID = v }),
			mapping.Text("status", "status", func(o *O, v string) { o.Status = v }),
			mapping.Text("paymentStatus", "payment_status", func(o *O, v string) { o.PaymentStatus = v }),
			mapping.Text("currencyCode", "currency_code", func(o *O, v string) { o.CurrencyCode = v }),
			mapping.Date("datePlaced", "datetime_added", func(o *O, v time.Time) { o.DatePlaced = v }),
			mapping.Date("dateShipped", "datetime_shipped", func(o *O, v time.Time) { o.DateShipped = v }),
			mapping.ShortDate("datePlacedShort", "datetime_added", func(o *O, v string) { o.DatePlacedShort = v }),

			mapping.Number("subtotal", "subtotal", func(o *O, v decimal.Decimal) { o.Subtotal = v }),
			mapping.Number("discount", "discount", func(o *O, v decimal.Decimal) { o.Discount = v }),
			mapping.Number("tax", "tax", func(o *O, v decimal.Decimal) { o.Tax = v }),
			mapping.Number("shipping", "shipping", func(o *O, v decimal.Decimal) { o.Shipping = v }),
			mapping.Number("shippingDiscount", "shipping_discount", func(o *O, v decimal.Decimal) { o.ShippingDiscount = v }),
			mapping.Number("credit", "credit", func(o *O, v decimal.Decimal) { o.Credit = v }),
			mapping.Number("vat", "vat", func(o *O, v decimal.Decimal) { o.Vat = v }),
			mapping.Number("storeCredit", "store_credit", func(o *O, v decimal.Decimal) { o.StoreCredit = v }),
			mapping.Number("total", "total", func(o *O, v decimal.Decimal) { o.Total = v }),
			mapping.Int("rewardPoints", "reward_points", func(o *O, v int64) { o.RewardPoints = v }),
			mapping.Bool("isSplit", "is_split", func(o *O, v bool) { o.IsSplit = v }),

			mapping.ExactlyOne("shippingAddress", "shipping_address", Address, func(o *O, v *domain.Address) { o.ShippingAddress = v }),
			mapping.ExactlyOne("billingAddress", "billing_address", Address, func(o *O, v *domain.Address) { o.BillingAddress = v }),
			mapping.ExactlyOne("paymentInfo", "payment_info", PaymentInfo, func(o *O, v *domain.PaymentInfo) { o.PaymentInfo = v }),
			mapping.Many("orderLines", "order_lines", OrderLineItem, func(o *O, v []domain.OrderLineItem) { o.OrderLines = v }),
			mapping.Many("orderLineDiscounts", "order_line_discounts", OrderLineDiscount, func(o *O, v []domain.OrderLineDiscount) { o.OrderLineDiscounts = v }),
			mapping.Many("tracking", "tracking", Tracking, func(o *O, v []domain.Tracking) { o.Tracking = v }),
			mapping.Many("splitOrders", "split_orders", OrderDetail, func(o *O, v []domain.OrderDetail) { o.SplitOrders = v }),
		},
	}
}
