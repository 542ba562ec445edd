// Package validator provides small, composable value checks that can be
// attached to record fields.
//
// A Validator is a stateless predicate over a proposed value: Check returns
// nil to accept it or a typed rejection error describing why not. Validators
// never modify the value and never coerce it.
//
// # Architecture
//
// Each source file groups one family of checks:
//
//   - TypeCheck: runtime type tags (int, float, number, string, bool,
//     sequence, map), element-typed sequences ("[int]") and TypeOf[T]
//   - RangeCheck: inclusive numeric minimum and optional maximum
//   - SizeCheck: exclusive maximum length for strings, sequences and maps
//   - FormatCheck: named string formats (email, url, uuid, ip, hostname, ...)
//   - OneOfCheck, PatternCheck, NullableCheck, FuncCheck
//
// Chain composes validators into one ordered check. Members run in
// declaration order and the first rejection is returned without running the
// rest, so Compose(Typed(TagString), MaxSize(8)) checks the type first.
// Chain.Verify detects compositions that can never accept a value, such as a
// numeric range after a string type check.
//
// # Usage
//
//	name := validator.Compose(validator.Typed(validator.TagString), validator.MaxSize(8))
//	shares := validator.Compose(validator.Typed(validator.TagInt), validator.Min(0))
//
//	if err := shares.Check(-10); err != nil {
//	    var below *validator.BelowMinimumError
//	    if errors.As(err, &below) {
//	        // below.Min == 0, below.Actual == -10
//	    }
//	}
//
// # Error Handling
//
// Rejections are typed errors (TypeMismatchError, BelowMinimumError,
// SizeExceededError, ...) that match ErrRejected and a per-kind sentinel
// with errors.Is, and implement Translatable for message catalogs.
// Construction problems such as a size check without a maximum match
// ErrConfiguration. ValidationErrors collects field-level rejections for
// batch reporting and unwraps to its members.
//
// A check given a value outside its category (a string for RangeCheck, an
// int for SizeCheck) reports a TypeMismatchError; it never panics.
package validator
