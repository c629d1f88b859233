package osc

// Constant returns the same value on every tick. Combined with chain.Product
// it acts as a gain stage.
type Constant struct {
	value float64
}

// NewConstant returns a source fixed at value.
func NewConstant(value float64) *Constant {
	return &Constant{value: value}
}

// SetValue changes the output value.
func (c *Constant) SetValue(value float64) { c.value = value }

// Value returns the output value.
func (c *Constant) Value() float64 { return c.value }

// Tick returns the value. The input is ignored.
func (c *Constant) Tick(float64) float64 { return c.value }
