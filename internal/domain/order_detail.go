package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDetail is the fully assembled order.
//
// Shipping is net of ShippingDiscount once assembled. VipDiscount and
// OrderRewardPoints are derived by the assembler, not read from the schema.
type OrderDetail struct {
	OrderID         int64     `json:"orderId"`
	MasterOrderID   int64     `json:"masterOrderId"`
	CustomerID      int64     `json:"customerId"`
	StoreGroupID    int64     `json:"storeGroupId"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	CurrencyCode    string    `json:"currencyCode"`
	DatePlaced      time.Time `json:"datePlaced"`
	DateShipped     time.Time `json:"dateShipped"`
	DatePlacedShort string    `json:"datePlacedShort"`

	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	Tax              decimal.Decimal `json:"tax"`
	Shipping         decimal.Decimal `json:"shipping"`
	ShippingDiscount decimal.Decimal `json:"shippingDiscount"`
	Credit           decimal.Decimal `json:"credit"`
	Vat              decimal.Decimal `json:"vat"`
	StoreCredit      decimal.Decimal `json:"storeCredit"`
	Total            decimal.Decimal `json:"total"`
	RewardPoints     int64           `json:"rewardPoints"`
	IsSplit          bool            `json:"isSplit"`

	ShippingAddress    *Address            `json:"shippingAddress"`
	BillingAddress     *Address            `json:"billingAddress"`
	PaymentInfo        *PaymentInfo        `json:"paymentInfo"`
	OrderLines         []OrderLineItem     `json:"orderLines"`
	OrderLineDiscounts []OrderLineDiscount `json:"orderLineDiscounts"`
	Tracking           []Tracking          `json:"tracking"`
	SplitOrders        []OrderDetail       `json:"splitOrders,omitempty"`

	VipDiscount       decimal.Decimal `json:"vipDiscount"`
	OrderRewardPoints int64           `json:"orderRewardPoints"`
}
