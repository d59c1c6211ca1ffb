package schema

import (
	"order-mapper/internal/domain"
	"order-mapper/internal/keys"
	"order-mapper/internal/mapping"
)

// PaymentInfo returns the PaymentInfo table.
func PaymentInfo() *mapping.Schema[domain.PaymentInfo] { return paymentInfoSchema }

// MapPaymentInfo maps one payment record.
func MapPaymentInfo(rec map[string]any) domain.PaymentInfo { return paymentInfoSchema.Map(rec) }

// Tracking returns the Tracking table.
func Tracking() *mapping.Schema[domain.Tracking] { return trackingSchema }

// MapTracking maps one tracking record.
func MapTracking(rec map[string]any) domain.Tracking { return trackingSchema.Map(rec) }

func buildPaymentInfo() *mapping.Schema[domain.PaymentInfo] {
	type P = domain.PaymentInfo

	return &mapping.Schema[P]{
		Name: "PaymentInfo",
		Case: keys.Lower,
		Fields: []mapping.Field[P]{
			mapping.Int("paymentMethodId", "payment_method_id", func(p *P, v int64) { p.PaymentMethodID = v }),
			mapping.Text("paymentMethod", "payment_method", func(p *P, v string) { p.PaymentMethod = v }),
			mapping.Int("creditCardId", "creditcard_id", func(p *P, v int64) { p.CreditCardID = v }),
			mapping.Text("cardType", "card_type", func(p *P, v string) { p.CardType = v }),
			mapping.Text("cardNumber", "card_num", func(p *P, v string) { p.CardNumber = v }),
			mapping.Text("expMonth", "exp_month", func(p *P, v string) { p.ExpMonth = v }),
			mapping.Text("expYear", "exp_year", func(p *P, v string) { p.ExpYear = v }),
			mapping.Text("nameOnCard", "name_on_card", func(p *P, v string) { p.NameOnCard = v }),
			mapping.Bool("isDefault", "is_default", func(p *P, v bool) { p.IsDefault = v }),
		},
	}
}

func buildTracking() *mapping.Schema[domain.Tracking] {
	type T = domain.Tracking

	return &mapping.Schema[T]{
		Name: "Tracking",
		Case: keys.Lower,
		Fields: []mapping.Field[T]{
			mapping.Text("trackingNumber", "tracking_number", func(t *T, v string) { t.TrackingNumber = v }),
			mapping.Text("trackingUrl", "tracking_url", func(t *T, v string) { t.TrackingURL = v }),
			mapping.Text("carrier", "carrier", func(t *T, v string) { t.Carrier = v }),
		},
	}
}
