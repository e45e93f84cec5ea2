package util

import "strconv"

// ComputeTotal is the booking pricing rule: unit price times traveler count.
// Both operands are whole currency units, so there is nothing to round.
func ComputeTotal(unitPrice int64, travelers int) int64 {
	return unitPrice * int64(travelers)
}

// FormatINR groups an amount the way en-IN does: the last three digits,
// then pairs (12,34,567).
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var groups []string
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		groups = append(groups, digits[len(digits)-3:])
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
	} else {
		groups = []string{digits}
	}

	out := ""
	for i, g := range groups {
		if i > 0 {
			out += ","
		}
		out += g
	}
	if neg {
		return "-" + out
	}
	return out
}

// DisplayPrice renders the default price_display form for a tour price,
// e.g. 1666 -> "1,666 Rs/-". Admins may still override the field.
func DisplayPrice(price int64) string {
	return FormatINR(price) + " Rs/-"
}
