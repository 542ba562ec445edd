package validator

import "errors"

// FuncCheck adapts a plain function into a Validator.
type FuncCheck struct {
	name string
	fn   func(any) error
}

// Func builds a named custom validator. Errors returned by fn that are not
// already rejections are wrapped in CustomError.
func Func(name string, fn func(value any) error) *FuncCheck {
	return &FuncCheck{name: name, fn: fn}
}

// Name returns the validator name.
func (c *FuncCheck) Name() string { return c.name }

func (c *FuncCheck) String() string { return "func(" + c.name + ")" }

func (c *FuncCheck) Check(value any) error {
	if c.fn == nil {
		return nil
	}
	err := c.fn(value)
	if err == nil || errors.Is(err, ErrRejected) {
		return err
	}
	return &CustomError{Name: c.name, Err: err}
}
