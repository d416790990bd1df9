package shipping

import (
	"fmt"
	"strings"
)

// Unit is one physical unit of a shippable product.
type Unit struct {
	Name   string
	Weight float64 // kg
}

// Notice is the manifest for the shippable part of an order. Units appear
// once per physical unit; Counts maps product name to the ordered quantity.
type Notice struct {
	Units       []Unit
	Counts      map[string]int64
	TotalWeight float64 // kg
}

// BuildNotice assembles the manifest for an ordered sequence of shippable
// units. It is a pure function of its inputs.
func BuildNotice(units []Unit, counts map[string]int64) *Notice {
	n := &Notice{Units: units, Counts: counts}
	for _, u := range units {
		n.TotalWeight += u.Weight
	}
	return n
}

// Render lists each distinct product once in first-seen order with its
// ordered count, then every unit's weight in grams, then the total package
// weight in kilograms to one decimal.
func (n *Notice) Render() string {
	var b strings.Builder
	b.WriteString("** Shipment notice **\n")
	printed := make(map[string]bool)
	for _, u := range n.Units {
		if printed[u.Name] {
			continue
		}
		printed[u.Name] = true
		fmt.Fprintf(&b, "%dx %s\n", n.Counts[u.Name], u.Name)
	}
	for _, u := range n.Units {
		fmt.Fprintf(&b, "%.0fg\n", u.Weight*1000)
	}
	fmt.Fprintf(&b, "Total package weight %.1fkg\n", n.TotalWeight)
	return b.String()
}
