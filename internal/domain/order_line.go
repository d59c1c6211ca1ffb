package domain

import "github.com/shopspring/decimal"

// OrderLineDiscount is a promotion applied to one order line.
type OrderLineDiscount struct {
	OrderLineDiscountID int64           `json:"orderLineDiscountId"`
	OrderLineID         int64           `json:"orderLineId"`
	PromoID             int64           `json:"promoId"`
	PromoCode           string          `json:"promoCode"`
	DiscountType        string          `json:"discountType"`
	Amount              decimal.Decimal `json:"amount"`
	Label               string          `json:"label"`
	Description         string          `json:"description"`
	RefundsAllowed      bool            `json:"refundsAllowed"`
	ExchangesAllowed    bool            `json:"exchangesAllowed"`
	FinalSale           bool            `json:"finalSale"`
}

// OrderLineItem is one purchased line of an order.
//
// GroupKey correlates bundle children with their parent. BundleItems is
// filled by the order assembler: children on bundle parents, an empty list on
// every other assembled line.
type OrderLineItem struct {
	OrderLineID              int64       `json:"orderLineId"`
	OrderID                  int64       `json:"orderId"`
	OfferID                  int64       `json:"offerId"`
	ProductID                int64       `json:"productId"`
	MasterProductID          int64       `json:"masterProductId"`
	ProductTypeID            ProductType `json:"productTypeId"`
	DefaultProductCategoryID int64       `json:"defaultProductCategoryId"`
	GroupKey                 string      `json:"groupKey"`
	GroupCode                string      `json:"groupCode"`
	ItemNumber               string      `json:"itemNumber"`
	Label                    string      `json:"label"`
	Size                     string      `json:"size"`
	Color                    string      `json:"color"`
	ImageURL                 string      `json:"imageUrl"`
	Status                   string      `json:"status"`
	Quantity                 int64       `json:"quantity"`

	UnitPrice             decimal.Decimal `json:"unitPrice"`
	ExtendedPrice         decimal.Decimal `json:"extendedPrice"`
	RetailUnitPrice       decimal.Decimal `json:"retailUnitPrice"`
	PurchaseUnitPrice     decimal.Decimal `json:"purchaseUnitPrice"`
	ExtendedPurchasePrice decimal.Decimal `json:"extendedPurchasePrice"`
	VipUnitPrice          decimal.Decimal `json:"vipUnitPrice"`
	PriceAdjustment       decimal.Decimal `json:"priceAdjustment"`
	DiscountAmount        decimal.Decimal `json:"discountAmount"`
	Tax                   decimal.Decimal `json:"tax"`

	DateShipped string             `json:"dateShipped"`
	Discount    *OrderLineDiscount `json:"discount,omitempty"`
	BundleItems []OrderLineItem    `json:"bundleItems"`
}
