package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats an amount stored as integer cents into a display string
// with a currency symbol, digit grouping and exactly two fraction digits.
// The arithmetic stays in integers so the rendering is exact for any input.
func Currency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return sign + printer.Sprintf("$%d.%02d", cents/100, cents%100)
}

// Date formats a time.Time into YYYY-MM-DD.
func Date(t time.Time) string {
	return t.Format(time.DateOnly)
}
