package share

import (
	"strconv"

	"golang.org/x/text/message"

	"dessert-clicker/internal/i18n"
)

// Formatter renders the shareable sales summary.
type Formatter struct {
	printer  *message.Printer
	currency string
}

func NewFormatter(printer *message.Printer, currency string) *Formatter {
	return &Formatter{printer: printer, currency: currency}
}

// Summary returns a one-line description of the sales so far.
func (f *Formatter) Summary(unitsSold, totalRevenue int) string {
	return f.printer.Sprintf(i18n.ShareSummary, strconv.Itoa(unitsSold), strconv.Itoa(totalRevenue), f.currency)
}
