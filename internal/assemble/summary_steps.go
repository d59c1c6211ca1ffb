package assemble

import (
	"slices"

	"order-mapper/internal/domain"
)

// InjectSummaryMembershipCost is InjectMembershipCost for the summary shape.
func InjectSummaryMembershipCost(s domain.OrderSummary) domain.OrderSummary {
	i := slices.IndexFunc(s.OrderLines, func(l domain.SummaryLine) bool {
		return l.ProductTypeID.IsMembership()
	})
	if i < 0 {
		return s
	}

	lines := slices.Clone(s.OrderLines)
	retail := lines[i].RetailUnitPrice

	lines[i].PurchaseUnitPrice = retail
	lines[i].ExtendedPurchasePrice = retail
	lines[i].VipUnitPrice = retail

	s.OrderLines = lines
	s.Subtotal = s.Subtotal.Add(retail)
	s.Total = s.Total.Add(retail)

	return s
}

// NetTariffSurcharge takes a positive tariff surcharge back out of the subtotal.
func NetTariffSurcharge(s domain.OrderSummary) domain.OrderSummary {
	if s.TariffSurchargeAmount.IsPositive() {
		s.Subtotal = s.Subtotal.Sub(s.TariffSurchargeAmount)
	}

	return s
}
