package currency

import (
	"fmt"
	"math"
	"strings"
)

// Format renders an amount with two decimals and comma thousands
// separators, e.g. 1234.5 -> "1,234.50". No currency code is attached; fare
// documents carry none per charge.
func Format(amount float64) string {
	cents := math.Round(amount * 100)

	negative := cents < 0
	if negative {
		cents = -cents
	}

	str := fmt.Sprintf("%.2f", cents/100)
	intPart, fracPart, _ := strings.Cut(str, ".")
	result := addThousandsSeparator(intPart, ",") + "." + fracPart

	if negative {
		result = "-" + result
	}
	return result
}

// FormatDuration renders whole seconds as "11h30m".
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		return "-" + FormatDuration(-seconds)
	}
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	return fmt.Sprintf("%dh%02dm", hours, mins)
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
