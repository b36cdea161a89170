// Package compare reports which search options differ between two
// responses.
package compare

import (
	"fmt"
	"reflect"

	"github.com/dharmasatrya/fareparse/internal/models"
)

// Options diffs two responses' search options field by field.
func Options(a, b *models.Response) (models.OptionsDiff, error) {
	return Fields(a.Options.Fields(), b.Options.Fields())
}

// Fields diffs two option maps. Both must carry the same field names; a
// field on one side only is an ErrInconsistentOptions.
func Fields(a, b map[string]any) (models.OptionsDiff, error) {
	diff := models.OptionsDiff{
		Left:  make(map[string]any),
		Right: make(map[string]any),
	}

	for k := range a {
		if _, ok := b[k]; !ok {
			return models.OptionsDiff{}, fmt.Errorf("%w: %q missing on the right", models.ErrInconsistentOptions, k)
		}
	}

	for k, bv := range b {
		av, ok := a[k]
		if !ok {
			return models.OptionsDiff{}, fmt.Errorf("%w: %q missing on the left", models.ErrInconsistentOptions, k)
		}
		if !equal(av, bv) {
			diff.Left[k] = av
			diff.Right[k] = bv
		}
	}

	return diff, nil
}

// equal treats numbers as equal regardless of their Go type, since maps
// decoded from JSON carry float64 where Fields() carries int.
func equal(a, b any) bool {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
