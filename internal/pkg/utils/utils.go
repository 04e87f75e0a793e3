package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// ConvertDurationToMinutes convert duration format string to minutes
// Example: "2h 30m" -> 150
func ConvertDurationToMinutes(duration string) int64 {
	var h, m int64
	fmt.Sscanf(duration, "%dh %dm", &h, &m)

	return h*60 + m
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"IDR": "Rp",
}

// FormatAmount renders a price with its currency symbol and thousands
// separators. Example: FormatAmount("USD", 1234.5) -> "$1,234.50"
func FormatAmount(currency string, amount float64) string {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = strings.ToUpper(currency) + " "
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100

	var result []byte
	str := strconv.FormatInt(whole, 10)

	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{','}, result...)
		}
	}

	formatted := fmt.Sprintf("%s%s.%02d", symbol, result, cents)
	if negative {
		return "-" + formatted
	}

	return formatted
}
