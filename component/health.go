package component

// Health is an integer hit-point counter. It is not clamped: several hits in
// one frame may push Current below zero, and deciding what that means is up
// to the caller.
type Health struct {
	Max     int
	Current int
}

// NewHealth creates a Health with max/current initialized.
func NewHealth(max int) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

// Damage subtracts amount. Non-positive amounts are ignored.
func (h *Health) Damage(amount int) {
	if amount <= 0 {
		return
	}
	h.Current -= amount
}

// Depleted reports whether health has reached zero or below.
func (h Health) Depleted() bool {
	return h.Current <= 0
}

// Percent returns Current as a percentage of Max.
func (h Health) Percent() int {
	if h.Max <= 0 {
		return 0
	}
	return h.Current * 100 / h.Max
}

// Reset restores Current to Max.
func (h *Health) Reset() {
	h.Current = h.Max
}
