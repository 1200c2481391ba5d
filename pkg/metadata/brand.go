package metadata

import (
	"fmt"
	"strings"
)

type Brand string

const (
	BrandMacBook Brand = "macbook"
	BrandAsus    Brand = "asus"
	BrandLenovo  Brand = "lenovo"
	BrandIphone  Brand = "iphone"
	BrandSamsung Brand = "samsung"
	BrandNokia   Brand = "nokia"
)

var brandKinds = map[Brand]Kind{
	BrandMacBook: KindLaptop,
	BrandAsus:    KindLaptop,
	BrandLenovo:  KindLaptop,
	BrandIphone:  KindMobilePhone,
	BrandSamsung: KindMobilePhone,
	BrandNokia:   KindMobilePhone,
}

var brandNames = map[Brand]string{
	BrandMacBook: "MacBook",
	BrandAsus:    "Asus",
	BrandLenovo:  "Lenovo",
	BrandIphone:  "Iphone",
	BrandSamsung: "Samsung",
	BrandNokia:   "Nokia",
}

func NewBrand(value string) (Brand, error) {
	brand := Brand(strings.ToLower(strings.TrimSpace(value)))
	if !brand.IsValid() {
		return "", fmt.Errorf("invalid brand: %s", value)
	}
	return brand, nil
}

func (b Brand) IsValid() bool {
	_, ok := brandKinds[b]
	return ok
}

// Kind returns the kind the brand belongs to, or an empty Kind for unknown brands.
func (b Brand) Kind() Kind {
	return brandKinds[b]
}

// BelongsTo reports whether b is a brand of kind k.
func (b Brand) BelongsTo(k Kind) bool {
	kind, ok := brandKinds[b]
	return ok && kind == k
}

func (b Brand) DisplayName() string {
	if name, ok := brandNames[b]; ok {
		return name
	}
	return string(b)
}

func (b Brand) String() string {
	return string(b)
}
