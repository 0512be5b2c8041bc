package filter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/folio/schema"
)

// ErrInvalidBrush is returned for a brush that is not four comma-separated numbers.
var ErrInvalidBrush = errors.New("brush must be x0,y0,x1,y1")

// ParseBrush parses "x0,y0,x1,y1" into a rectangle. An empty string means no brush.
func ParseBrush(value string) (*schema.Rect, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return nil, ErrInvalidBrush
	}
	nums := make([]float64, 4)
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidBrush, p)
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("%w: %q is not finite", ErrInvalidBrush, p)
		}
		nums[i] = n
	}
	return &schema.Rect{
		From: schema.Point{X: nums[0], Y: nums[1]},
		To:   schema.Point{X: nums[2], Y: nums[3]},
	}, nil
}
