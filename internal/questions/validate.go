package questions

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Validate checks submitted answers against the catalog. A nil value is
// accepted for any known question (it clears the answer). Every problem
// is reported, not just the first.
func (c *Catalog) Validate(answers map[string]any) error {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, id := range keys {
		def, ok := c.Get(id)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: unknown question", id))
			continue
		}
		if answers[id] == nil {
			continue
		}
		if err := def.check(answers[id]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

func (d Definition) check(v any) error {
	switch d.Type {
	case TypeNumber:
		n, ok := number(v)
		if !ok {
			return fmt.Errorf("want a number, got %T", v)
		}
		if n < 0 {
			return fmt.Errorf("must not be negative")
		}
	case TypeScale:
		n, ok := number(v)
		if !ok || n != math.Trunc(n) {
			return fmt.Errorf("want a whole number %d-%d", ScaleMin, ScaleMax)
		}
		if n < ScaleMin || n > ScaleMax {
			return fmt.Errorf("must be between %d and %d", ScaleMin, ScaleMax)
		}
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("want true or false, got %T", v)
		}
	case TypeText:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("want text, got %T", v)
		}
	case TypeSelect:
		s, ok := v.(string)
		if !ok || !d.HasOption(s) {
			return fmt.Errorf("must be one of %v", d.Options)
		}
	}
	return nil
}

func number(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
