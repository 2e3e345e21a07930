package order

// Status is the persisted delivered flag of an order.
type Status bool

const (
	// Pending covers both unassigned orders and orders out for delivery.
	Pending Status = false
	// Delivered marks the order as handed over.
	Delivered Status = true
)

func (s Status) String() string {
	if s {
		return "Delivered"
	}
	return "Pending"
}
