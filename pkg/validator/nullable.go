package validator

// NullableCheck accepts an explicit nil and runs its inner chain for every
// other value. Without it nil is an ordinary value that type checks reject.
type NullableCheck struct {
	inner Chain
}

// Nullable exempts nil from the given validators.
func Nullable(inner ...Validator) *NullableCheck {
	return &NullableCheck{inner: Compose(inner...)}
}

// Inner returns the chain applied to non-nil values.
func (c *NullableCheck) Inner() Chain { return c.inner }

func (c *NullableCheck) String() string { return "nullable(" + c.inner.String() + ")" }

func (c *NullableCheck) Check(value any) error {
	if value == nil {
		return nil
	}
	return c.inner.Check(value)
}
