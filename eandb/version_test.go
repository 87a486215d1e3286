package eandb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{input: "v1", want: V1},
		{input: "1", want: V1},
		{input: "V2", want: V2},
		{input: " 2 ", want: V2},
		{input: "v3", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionPath(t *testing.T) {
	assert.Equal(t, "/api/v1/product/4006381333931", V1.Path("4006381333931"))
	assert.Equal(t, "/api/v2/product/TEST", V2.Path("TEST"))
	assert.Equal(t, "/api/v2/product/..%2Fadmin", V2.Path("../admin"))
}

func TestVersionParseProduct(t *testing.T) {
	p, err := V2.ParseProduct([]byte(`{"barcode": "1", "relatedBrands": [{"titles": {"en": "B"}}]}`))
	require.NoError(t, err)
	assert.Len(t, p.RelatedBrands, 1)

	p, err = V1.ParseProduct([]byte(`{"barcode": "1", "relatedBrands": [{"titles": {"en": "B"}}]}`))
	require.NoError(t, err)
	assert.Empty(t, p.RelatedBrands)

	_, err = Version(0).ParseProduct([]byte(`{"barcode": "1"}`))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}
