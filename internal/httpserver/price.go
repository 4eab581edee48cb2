package httpserver

import (
	"errors"
	"strconv"
	"strings"
)

// priceValue accepts both JSON numbers and numeric strings; storefront
// clients send prices like "9.99".
type priceValue float64

func (p *priceValue) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("invalid price")
	}
	*p = priceValue(f)
	return nil
}
