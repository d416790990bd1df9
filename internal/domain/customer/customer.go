package customer

// Customer holds a spendable balance. The stored balance keeps full
// precision; display truncation is a presentation concern.
type Customer struct {
	Name    string
	Balance float64
}

func New(name string, balance float64) *Customer {
	return &Customer{Name: name, Balance: balance}
}

// Deduct debits the balance by amount. Callers must have verified
// affordability first; the balance never goes negative through checkout.
func (c *Customer) Deduct(amount float64) {
	c.Balance -= amount
}
