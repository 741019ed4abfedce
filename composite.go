package radial

// Composite is the ordered set of field values a wizard accumulates. The
// field order is fixed when the wizard is built; Set never reorders it.
type Composite struct {
	order  []string
	values map[string]any
}

func newComposite(order []string) *Composite {
	o := make([]string, len(order))
	copy(o, order)
	return &Composite{order: o, values: make(map[string]any, len(order))}
}

// Fields returns the configured field order.
func (c *Composite) Fields() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of fields that hold a value.
func (c *Composite) Len() int { return len(c.values) }

// Get returns the value stored for field.
func (c *Composite) Get(field string) (any, bool) {
	v, ok := c.values[field]
	return v, ok
}

// Has reports whether field holds a value.
func (c *Composite) Has(field string) bool {
	_, ok := c.values[field]
	return ok
}

// Each calls fn for every set field in configuration order.
func (c *Composite) Each(fn func(field string, value any)) {
	for _, f := range c.order {
		if v, ok := c.values[f]; ok {
			fn(f, v)
		}
	}
}

// Map returns a copy of the set values.
func (c *Composite) Map() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy.
func (c *Composite) Clone() *Composite {
	out := newComposite(c.order)
	for k, v := range c.values {
		out.values[k] = v
	}
	return out
}

func (c *Composite) set(field string, value any) {
	c.values[field] = value
}
