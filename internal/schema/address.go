package schema

import (
	"time"

	"order-mapper/internal/domain"
	"order-mapper/internal/keys"
	"order-mapper/internal/mapping"
)

// Address returns the Address table (UPPER keys).
func Address() *mapping.Schema[domain.Address] { return addressSchema }

// MapAddress maps one address record.
func MapAddress(rec map[string]any) domain.Address { return addressSchema.Map(rec) }

func buildAddress() *mapping.Schema[domain.Address] {
	type A = domain.Address

	return &mapping.Schema[A]{
		Name: "Address",
		Case: keys.Upper,
		Fields: []mapping.Field[A]{
			mapping.Int("addressId", "ADDRESS_ID", func(a *A, v int64) { a.AddressID = v }),
			mapping.Text("firstName", "FIRSTNAME", func(a *A, v string) { a.FirstName = v }),
			mapping.Text("lastName", "LASTNAME", func(a *A, v string) { a.LastName = v }),
			mapping.Text("company", "COMPANY", func(a *A, v string) { a.Company = v }),
			mapping.Text("address1", "ADDRESS1", func(a *A, v string) { a.Address1 = v }),
			mapping.Text("address2", "ADDRESS2", func(a *A, v string) { a.Address2 = v }),
			mapping.Text("city", "CITY", func(a *A, v string) { a.City = v }),
			mapping.Text("state", "STATE", func(a *A, v string) { a.State = v }),
			mapping.Text("zip", "ZIP", func(a *A, v string) { a.Zip = v }),
			mapping.Text("countryCode", "COUNTRY_CODE", func(a *A, v string) { a.CountryCode = v }),
			mapping.Text("phone", "PHONE", func(a *A, v string) { a.Phone = v }),
			mapping.Text("email", "EMAIL", func(a *A, v string) { a.Email = v }),
			mapping.Bool("isDefault", "IS_DEFAULT", func(a *A, v bool) { a.IsDefault = v }),
			mapping.Bool("validated", "VALIDATED", func(a *A, v bool) { a.Validated = v }),
			mapping.Date("dateTimeAdded", "DATETIME_ADDED", func(a *A, v time.Time) { a.DateTimeAdded = v }),
			mapping.Date("dateTimeModified", "DATETIME_MODIFIED", func(a *A, v time.Time) { a.DateTimeModified = v }),
		},
	}
}
