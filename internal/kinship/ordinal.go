package kinship

import "strconv"

// Ordinal renders n as "1st", "2nd", "3rd", "4th", ... Any n whose value mod
// 100 falls in [10, 20] takes "th" (11th, 12th, 13th, 111th).
func Ordinal(n int) string {
	return strconv.Itoa(n) + ordinalSuffix(n)
}

func ordinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}

	if r := n % 100; r >= 10 && r <= 20 {
		return "th"
	}

	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// isOrdinal reports whether s is a rendered ordinal such as "2nd" or "113th".
func isOrdinal(s string) bool {
	if len(s) < 3 {
		return false
	}

	digits, suffix := s[:len(s)-2], s[len(s)-2:]

	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || strconv.Itoa(n) != digits {
		return false
	}

	return ordinalSuffix(n) == suffix
}
