package graph

import (
	"strconv"

	"github.com/luckyluck/event-booking-app/internal/domain"
)

// Price is a non-negative amount that accepts Float, Int, or numeric
// String input. Non-numeric strings are rejected before any resolver
// runs.
type Price float64

func (Price) ImplementsGraphQLType(name string) bool {
	return name == "Price"
}

func (p *Price) UnmarshalGraphQL(input interface{}) error {
	switch v := input.(type) {
	case float64:
		*p = Price(v)
	case int32:
		*p = Price(v)
	case int:
		*p = Price(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.ErrInvalidPrice
		}
		*p = Price(f)
	default:
		return domain.ErrInvalidPrice
	}
	return nil
}
