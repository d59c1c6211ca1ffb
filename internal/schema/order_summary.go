package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"order-mapper/internal/domain"
	"order-mapper/internal/keys"
	"order-mapper/internal/mapping"
)

// SummaryLine returns the non-recursive line table used by order summaries.
func SummaryLine() *mapping.Schema[domain.SummaryLine] { return summaryLineSchema }

// OrderSummary returns the OrderSummary table (UPPER keys).
func OrderSummary() *mapping.Schema[domain.OrderSummary] { return orderSummarySchema }

func buildSummaryLine() *mapping.Schema[domain.SummaryLine] {
	type L = domain.SummaryLine

	return &mapping.Schema[L]{
		Name: "SummaryLine",
		Case: keys.Upper,
		Fields: []mapping.Field[L]{
			mapping.Int("orderLineId", "ORDER_LINE_ID", func(l *L, v int64) { l.OrderLineID = v }),
			mapping.Int("productId", "PRODUCT_ID", func(l *L, v int64) { l.ProductID = v }),
			mapping.Int("productTypeId", "PRODUCT_TYPE_ID", func(l *L, v int64) { l.ProductTypeID = domain.ProductType(v) }),
			mapping.Text("label", "LABEL", func(l *L, v string) { l.Label = v }),
			mapping.Text("imageUrl", "IMAGE_URL", func(l *L, v string) { l.ImageURL = v }),
			mapping.Int("quantity", "QUANTITY", func(l *L, v int64) { l.Quantity = v }),
			mapping.Number("retailUnitPrice", "RETAIL_UNIT_PRICE", func(l *L, v decimal.Decimal) { l.RetailUnitPrice = v }),
			mapping.Number("purchaseUnitPrice", "PURCHASE_UNIT_PRICE", func(l *L, v decimal.Decimal) { l.PurchaseUnitPrice = v }),
			mapping.Number("extendedPurchasePrice", "EXTENDED_PURCHASE_PRICE", func(l *L, v decimal.Decimal) { l.ExtendedPurchasePrice = v }),
			mapping.Number("vipUnitPrice", "VIP_UNIT_PRICE", func(l *L, v decimal.Decimal) { l.VipUnitPrice = v }),
		},
	}
}

func buildOrderSummary() *mapping.Schema[domain.OrderSummary] {
	type S = domain.OrderSummary

	return &mapping.Schema[S]{
		Name: "OrderSummary",
		Case: keys.Upper,
		Fields: []mapping.Field[S]{
			mapping.Int("orderId", "ORDER_ID", func(s *S, v int64) { s.OrderID = v }),
			mapping.Text("status", "STATUS", func(s *S, v string) { s.Status = v }),
			mapping.Date("datePlaced", "DATETIME_ADDED", func(s *S, v time.Time) { s.DatePlaced = v }),
			mapping.ShortDate("datePlacedShort", "DATETIME_ADDED", func(s *S, v string) { s.DatePlacedShort = v }),
			mapping.Number("subtotal", "SUBTOTAL", func(s *S, v decimal.Decimal) { s.Subtotal = v }),
			mapping.Number("discount", "DISCOUNT", func(s *S, v decimal.Decimal) { s.Discount = v }),
			mapping.Number("tax", "TAX", func(s *S, v decimal.Decimal) { s.Tax = v }),
			mapping.Number("shipping", "SHIPPING", func(s *S, v decimal.Decimal) { s.Shipping = v }),
			mapping.Number("storeCredit", "STORE_CREDIT", func(s *S, v decimal.Decimal) { s.StoreCredit = v }),
			mapping.Number("total", "TOTAL", func(s *S, v decimal.Decimal) { s.Total = v }),
			mapping.Number("tariffSurchargeAmount", "TARIFF_SURCHARGE_AMOUNT", func(s *S, v decimal.Decimal) { s.TariffSurchargeAmount = v }),
			mapping.Int("itemCount", "ITEM_COUNT", func(s *S, v int64) { s.ItemCount = v }),
			mapping.Many("orderLines", "ORDER_LINES", SummaryLine, func(s *S, v []domain.SummaryLine) { s.OrderLines = v }),
			mapping.Opaque("types", "TYPES", func(s *S, v any) { s.Types = v }),
			mapping.Opaque("offers", "OFFERS", func(s *S, v any) { s.Offers = v }),
			mapping.Opaque("credits", "CREDITS", func(s *S, v any) { s.Credits = v }),
		},
	}
}
