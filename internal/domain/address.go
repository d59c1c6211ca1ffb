package domain

import "time"

// Address is a shipping or billing address.
type Address struct {
	AddressID        int64     `json:"addressId"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Company          string    `json:"company"`
	Address1         string    `json:"address1"`
	Address2         string    `json:"address2"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Zip              string    `json:"zip"`
	CountryCode      string    `json:"countryCode"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	IsDefault        bool      `json:"isDefault"`
	Validated        bool      `json:"validated"`
	DateTimeAdded    time.Time `json:"dateTimeAdded"`
	DateTimeModified time.Time `json:"dateTimeModified"`
}

// PaymentInfo identifies the payment method charged for an order.
// Card data arrives already masked.
type PaymentInfo struct {
	PaymentMethodID int64  `json:"paymentMethodId"`
	PaymentMethod   string `json:"paymentMethod"`
	CreditCardID    int64  `json:"creditCardId"`
	CardType        string `json:"cardType"`
	CardNumber      string `json:"cardNumber"`
	ExpMonth        string `json:"expMonth"`
	ExpYear         string `json:"expYear"`
	NameOnCard      string `json:"nameOnCard"`
	IsDefault       bool   `json:"isDefault"`
}

// Tracking is one shipment tracking reference.
type Tracking struct {
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl"`
	Carrier        string `json:"carrier"`
}
