package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryLine is the light line shape carried by an order summary.
type SummaryLine struct {
	OrderLineID           int64           `json:"orderLineId"`
	ProductID             int64           `json:"productId"`
	ProductTypeID         ProductType     `json:"productTypeId"`
	Label                 string          `json:"label"`
	ImageURL              string          `json:"imageUrl"`
	Quantity              int64           `json:"quantity"`
	RetailUnitPrice       decimal.Decimal `json:"retailUnitPrice"`
	PurchaseUnitPrice     decimal.Decimal `json:"purchaseUnitPrice"`
	ExtendedPurchasePrice decimal.Decimal `json:"extendedPurchasePrice"`
	VipUnitPrice          decimal.Decimal `json:"vipUnitPrice"`
}

// OrderSummary is the order-history view of an order.
//
// Types, Offers and Credits are upstream payloads passed through untouched;
// they are not part of the typed contract.
type OrderSummary struct {
	OrderID               int64           `json:"orderId"`
	Status                string          `json:"status"`
	DatePlaced            time.Time       `json:"datePlaced"`
	DatePlacedShort       string          `json:"datePlacedShort"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	Discount              decimal.Decimal `json:"discount"`
	Tax                   decimal.Decimal `json:"tax"`
	Shipping              decimal.Decimal `json:"shipping"`
	StoreCredit           decimal.Decimal `json:"storeCredit"`
	Total                 decimal.Decimal `json:"total"`
	TariffSurchargeAmount decimal.Decimal `json:"tariffSurchargeAmount"`
	ItemCount             int64           `json:"itemCount"`
	OrderLines            []SummaryLine   `json:"orderLines"`

	Types   any `json:"types,omitempty"`
	Offers  any `json:"offers,omitempty"`
	Credits any `json:"credits,omitempty"`
}
