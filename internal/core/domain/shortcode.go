package domain

import (
	"errors"
	"strings"
)

// ErrMalformedShortCode is returned when a composite short code has no
// hyphen separator and therefore cannot name a brand and a campaign.
var ErrMalformedShortCode = errors.New("malformed short code")

// SplitShortCode splits a composite short code of the form
// "{brandCode}-{campaignCode}" into its two parts. Brand codes may themselves
// contain hyphens, so the split happens at the LAST hyphen: "capital-rr-ig"
// yields brand "capital-rr" and campaign "ig". Codes are not trimmed or
// case-folded here; the store matches them exactly.
func SplitShortCode(code string) (brandCode, campaignCode string, err error) {
	i := strings.LastIndexByte(code, '-')
	if i < 0 {
		return "", "", ErrMalformedShortCode
	}
	return code[:i], code[i+1:], nil
}

// JoinShortCode is the inverse of SplitShortCode.
func JoinShortCode(brandCode, campaignCode string) string {
	return brandCode + "-" + campaignCode
}
