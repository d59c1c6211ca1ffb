package domain

//go:generate go tool stringer -type=ProductType -trimprefix=ProductType -output=producttype_string.go

// ProductType classifies an order line.
type ProductType int64

const (
	ProductTypeItem       ProductType = 1
	ProductTypeMembership ProductType = 2
	// ProductTypeSet is a bundle parent; its children share its group key.
	ProductTypeSet ProductType = 3
	// ProductTypeSetProduct is a bundle child.
	ProductTypeSetProduct      ProductType = 4
	ProductTypeGiftCertificate ProductType = 5
)

// IsMembership reports whether the line is a membership product.
func (p ProductType) IsMembership() bool { return p == ProductTypeMembership }

// IsBundleParent reports whether the line is a bundle parent ("set").
func (p ProductType) IsBundleParent() bool { return p == ProductTypeSet }

// IsBundleChild reports whether the line is a bundle child ("set product").
func (p ProductType) IsBundleChild() bool { return p == ProductTypeSetProduct }
