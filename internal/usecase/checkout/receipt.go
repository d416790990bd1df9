package checkout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tahaaa22/Fawry--e-commerce-system/internal/usecase/shipping"
)

// Line is one purchased entry on a receipt.
type Line struct {
	Name      string
	Quantity  int64
	LineTotal float64
}

// Receipt is the outcome of a successful checkout. Monetary fields keep full
// precision; Render truncates for display only. Notice is nil when nothing
// in the order ships.
type Receipt struct {
	OrderID      uuid.UUID
	Lines        []Line
	Subtotal     float64
	Shipping     float64
	Total        float64
	BalanceAfter float64
	Notice       *shipping.Notice
}

// Render produces the register output: the shipment notice first when
// anything ships, then the receipt with every amount truncated (not rounded)
// to whole currency units.
func (r *Receipt) Render() string {
	var b strings.Builder
	if r.Notice != nil {
		b.WriteString(r.Notice.Render())
	}
	b.WriteString("** Checkout receipt **\n")
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "%dx %-12s%d\n", l.Quantity, l.Name, int64(l.LineTotal))
	}
	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "Subtotal         %d\n", int64(r.Subtotal))
	fmt.Fprintf(&b, "Shipping         %d\n", int64(r.Shipping))
	fmt.Fprintf(&b, "Amount           %d\n", int64(r.Total))
	fmt.Fprintf(&b, "Balance          %d\n", int64(r.BalanceAfter))
	b.WriteString("END.\n")
	return b.String()
}
