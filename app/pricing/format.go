package pricing

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	symbol  string
	printer *message.Printer
}

func NewFormatter(symbol, locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid currency locale %q: %w", locale, err)
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}, nil
}

// FormatPrice renders a whole-unit amount with the currency symbol and the
// locale's digit grouping.
func (f *Formatter) FormatPrice(amount int64) string {
	return f.symbol + f.printer.Sprintf("%d", amount)
}

func SavingsLabel(percent int64) string {
	return fmt.Sprintf("Save %d%%", percent)
}
