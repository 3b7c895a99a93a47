package utils

import (
	"strconv"
	"strings"
)

// ParseINR extracts an integer rupee estimate from a price string such as
// "₹1,200–₹3,500" or "₹500". When two digit runs are present they are treated
// as a low–high range and the midpoint (floor) is returned. Returns 0 when no
// digits are found.
func ParseINR(value string) int {
	if value == "" {
		return 0
	}

	var runs []int
	current := strings.Builder{}
	flush := func() {
		if current.Len() > 0 {
			if n, err := strconv.Atoi(current.String()); err == nil {
				runs = append(runs, n)
			}
			current.Reset()
		}
	}
	for _, ch := range value {
		if ch >= '0' && ch <= '9' {
			current.WriteRune(ch)
		} else {
			flush()
		}
	}
	flush()

	switch {
	case len(runs) == 0:
		return 0
	case len(runs) >= 2:
		return (runs[0] + runs[1]) / 2
	default:
		return runs[0]
	}
}

// FormatINR renders an integer rupee amount as "₹12,345".
func FormatINR(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + "₹" + strings.Join(groups, ",")
}
