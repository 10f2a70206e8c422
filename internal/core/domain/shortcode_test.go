package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitShortCode(t *testing.T) {
	tests := []struct {
		code         string
		brandCode    string
		campaignCode string
	}{
		{"capital-ig", "capital", "ig"},
		{"A-B-C", "A-B", "C"},
		{"capital-rr-gym-ig", "capital-rr-gym", "ig"},
		{"-ig", "", "ig"},
		{"capital-", "capital", ""},
	}
	for _, tt := range tests {
		brandCode, campaignCode, err := SplitShortCode(tt.code)
		require.NoError(t, err, tt.code)
		require.Equal(t, tt.brandCode, brandCode, tt.code)
		require.Equal(t, tt.campaignCode, campaignCode, tt.code)

		// splitting is the inverse of joining
		require.Equal(t, tt.code, JoinShortCode(brandCode, campaignCode))
	}
}

func TestSplitShortCodeNoHyphen(t *testing.T) {
	for _, code := range []string{"nohyphen", "", "capital_ig"} {
		_, _, err := SplitShortCode(code)
		require.True(t, errors.Is(err, ErrMalformedShortCode), code)
	}
}

func TestBrandLocation(t *testing.T) {
	require.Equal(t, "Alexandria, VA", Brand{City: "Alexandria", State: "VA"}.Location())
	require.Equal(t, "Alexandria", Brand{City: "Alexandria"}.Location())
	require.Equal(t, "VA", Brand{State: "VA"}.Location())
	require.Equal(t, "", Brand{}.Location())
}
