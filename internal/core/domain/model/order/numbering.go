package order

import "strconv"

// PaddedNumber renders an order id for artifact filenames: left-zero-padded
// to at least 6 digits. Ids of 7 or more digits pass through unpadded,
// never truncated — partner tooling depends on this exact rule.
func PaddedNumber(id int64) string {
	number := strconv.FormatInt(id, 10)
	for len(number) < 6 {
		number = "0" + number
	}
	return number
}
