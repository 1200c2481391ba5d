package metadata

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindLaptop      Kind = "laptop"
	KindMobilePhone Kind = "mobile_phone"
)

// Kinds lists every asset kind in reporting order.
func Kinds() []Kind {
	return []Kind{KindLaptop, KindMobilePhone}
}

func NewKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid asset kind: %s, only valid values are: %s, %s", value, KindLaptop, KindMobilePhone)
	}
	return kind, nil
}

func (k Kind) IsValid() bool {
	switch k {
	case KindLaptop, KindMobilePhone:
		return true
	default:
		return false
	}
}

func (k Kind) DisplayName() string {
	switch k {
	case KindLaptop:
		return "Laptop"
	case KindMobilePhone:
		return "MobilePhone"
	default:
		return string(k)
	}
}

func (k Kind) String() string {
	return string(k)
}
