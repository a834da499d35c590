package estimator

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatNumber renders n with en-US thousands separators, e.g. "15,000".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatUSD renders amount as whole US dollars, e.g. "$50,250" or "-$1,235".
func FormatUSD(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$0"
	}
	whole := Round(math.Abs(amount))
	if whole == 0 {
		return "$0"
	}
	s := "$" + FormatNumber(int64(whole))
	if amount < 0 {
		return "-" + s
	}
	return s
}

// ParseAmount reads a user-typed amount: every non-digit is dropped and the
// remaining digits are parsed as a whole number. Empty, invalid or
// overflowing input yields 0.
func ParseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return float64(n)
}

// ReformatAmount normalizes a form field the way the input re-renders it:
// digits only, then thousands-separated. Empty input stays empty.
func ReformatAmount(s string) string {
	if !strings.ContainsAny(s, "0123456789") {
		return ""
	}
	return FormatNumber(int64(ParseAmount(s)))
}
