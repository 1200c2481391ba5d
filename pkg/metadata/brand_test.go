package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBrand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Brand
		wantErr bool
	}{
		{"lowercase macbook", "macbook", BrandMacBook, false},
		{"mixed case with spaces", "  MacBook ", BrandMacBook, false},
		{"uppercase NOKIA", "NOKIA", BrandNokia, false},
		{"unknown brand", "dell", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewBrand(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrandKind(t *testing.T) {
	tests := []struct {
		brand Brand
		kind  Kind
	}{
		{BrandMacBook, KindLaptop},
		{BrandAsus, KindLaptop},
		{BrandLenovo, KindLaptop},
		{BrandIphone, KindMobilePhone},
		{BrandSamsung, KindMobilePhone},
		{BrandNokia, KindMobilePhone},
	}

	for _, tt := range tests {
		t.Run(string(tt.brand), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.brand.Kind())
			assert.True(t, tt.brand.BelongsTo(tt.kind))
		})
	}

	assert.False(t, BrandIphone.BelongsTo(KindLaptop))
	assert.False(t, Brand("dell").BelongsTo(KindLaptop))
	assert.Equal(t, Kind(""), Brand("dell").Kind())
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "MacBook", BrandMacBook.DisplayName())
	assert.Equal(t, "Iphone", BrandIphone.DisplayName())
	assert.Equal(t, "Laptop", KindLaptop.DisplayName())
	assert.Equal(t, "MobilePhone", KindMobilePhone.DisplayName())
}

func TestNewKind(t *testing.T) {
	kind, err := NewKind(" Laptop ")
	assert.NoError(t, err)
	assert.Equal(t, KindLaptop, kind)

	_, err = NewKind("tablet")
	assert.Error(t, err)

	assert.Equal(t, []Kind{KindLaptop, KindMobilePhone}, Kinds())
}
