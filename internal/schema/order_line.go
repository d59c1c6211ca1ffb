package schema

import (
	"github.com/shopspring/decimal"

	"order-mapper/internal/domain"
	"order-mapper/internal/keys"
	"order-mapper/internal/mapping"
)

// OrderLineDiscount returns the OrderLineDiscount table.
func OrderLineDiscount() *mapping.Schema[domain.OrderLineDiscount] { return orderLineDiscountSchema }

// MapOrderLineDiscount maps one line discount record.
func MapOrderLineDiscount(rec map[string]any) domain.OrderLineDiscount {
	return orderLineDiscountSchema.Map(rec)
}

// OrderLineItem returns the OrderLineItem table.
func OrderLineItem() *mapping.Schema[domain.OrderLineItem] { return orderLineItemSchema }

// MapOrderLineItem maps one order line record. BundleItems is left empty.
func MapOrderLineItem(rec map[string]any) domain.OrderLineItem { return orderLineItemSchema.Map(rec) }

func buildOrderLineDiscount() *mapping.Schema[domain.OrderLineDiscount] {
	type D = domain.OrderLineDiscount

	return &mapping.Schema[D]{
		Name: "OrderLineDiscount",
		Case: keys.Lower,
		Fields: []mapping.Field[D]{
			mapping.Int("orderLineDiscountId", "order_line_discount_id", func(d *D, v int64) { d.OrderLineDiscountID = v }),
			mapping.Int("orderLineId", "order_line_id", func(d *D, v int64) { d.OrderLineID = v }),
			mapping.Int("promoId", "promo_id", func(d *D, v int64) { d.PromoID = v }),
			mapping.Text("promoCode", "promo_code", func(d *D, v string) { d.PromoCode = v }),
			mapping.Text("discountType", "discount_type", func(d *D, v string) { d.DiscountType = v }),
			mapping.Number("amount", "amount", func(d *D, v decimal.Decimal) { d.Amount = v }),
			mapping.Text("label", "label", func(d *D, v string) { d.Label = v }),
			mapping.Text("description", "description", func(d *D, v string) { d.Description = v }),
			mapping.Bool("refundsAllowed", "refunds_allowed", func(d *D, v bool) { d.RefundsAllowed = v }),
			mapping.Bool("exchangesAllowed", "exchanges_allowed", func(d *D, v bool) { d.ExchangesAllowed = v }),
			mapping.Bool("finalSale", "final_sale", func(d *D, v bool) { d.FinalSale = v }),
		},
	}
}

func buildOrderLineItem() *mapping.Schema[domain.OrderLineItem] {
	type L = domain.OrderLineItem

	return &mapping.Schema[L]{
		Name: "OrderLineItem",
		Case: keys.Lower,
		Fields: []mapping.Field[L]{
			mapping.Int("orderLineId", "order_line_id", func(l *L, v int64) { l.OrderLineID = v }),
			mapping.Int("orderId", "order_id", func(l *L, v int64) { l.OrderID = v }),
			mapping.Int("offerId", "offer_id", func(l *L, v int64) { l.OfferID = v }),
			mapping.Int("productId", "product_id", func(l *L, v int64) { l.ProductID = v }),
			mapping.Int("masterProductId", "master_product_id", func(l *L, v int64) { l.MasterProductID = v }),
			mapping.Int("productTypeId", "product_type_id", func(l *L, v int64) { l.ProductTypeID = domain.ProductType(v) }),
			mapping.Int("defaultProductCategoryId", "default_product_category_id", func(l *L, v int64) { l.DefaultProductCategoryID = v }),
			mapping.Text("groupKey", "group_key", func(l *L, v string) { l.GroupKey = v }),
			mapping.Text("groupCode", "group_code", func(l *L, v string) { l.GroupCode = v }),
			mapping.Text("itemNumber", "item_number", func(l *L, v string) { l.ItemNumber = v }),
			mapping.Text("label", "label", func(l *L, v string) { l.Label = v }),
			mapping.Text("size", "size", func(l *L, v string) { l.Size = v }),
			mapping.Text("color", "color", func(l *L, v string) { l.Color = v }),
			mapping.Text("imageUrl", "image_url", func(l *L, v string) { l.ImageURL = v }),
			mapping.Text("status", "status", func(l *L, v string) { l.Status = v }),
			mapping.Int("quantity", "quantity", func(l *L, v int64) { l.Quantity = v }),
			mapping.Number("unitPrice", "unit_price", func(l *L, v decimal.Decimal) { l.UnitPrice = v }),
			mapping.Number("extendedPrice", "extended_price", func(l *L, v decimal.Decimal) { l.ExtendedPrice = v }),
			mapping.Number("retailUnitPrice", "retail_unit_price", func(l *L, v decimal.Decimal) { l.RetailUnitPrice = v }),
			mapping.Number("purchaseUnitPrice", "purchase_unit_price", func(l *L, v decimal.Decimal) { l.PurchaseUnitPrice = v }),
			mapping.Number("extendedPurchasePrice", "extended_purchase_price", func(l *L, v decimal.Decimal) { l.ExtendedPurchasePrice = v }),
			mapping.Number("vipUnitPrice", "vip_unit_price", func(l *L, v decimal.Decimal) { l.VipUnitPrice = v }),
			mapping.Number("priceAdjustment", "price_adjustment", func(l *L, v decimal.Decimal) { l.PriceAdjustment = v }),
			mapping.Number("discountAmount", "discount_amount", func(l *L, v decimal.Decimal) { l.DiscountAmount = v }),
			mapping.Number("tax", "tax", func(l *L, v decimal.Decimal) { l.Tax = v }),
			mapping.ShortDate("dateShipped", "date_shipped", func(l *L, v string) { l.DateShipped = v }),
			mapping.One("discount", "discount", OrderLineDiscount, func(l *L, v *domain.OrderLineDiscount) { l.Discount = v }),
		},
	}
}
