// Package record provides records whose field writes are checked against a
// sealed schema.
//
// A Record is created from named values with New, or from positional values
// with NewPositional. Construction is atomic: either every supplied value
// passes its field's chain and a record is returned, or an error is returned
// and no record exists. Set validates before committing, so a rejected write
// never changes the stored value:
//
//	r, err := record.New(stock, map[string]any{"name": "GOOG", "shares": 100, "price": 490.1})
//	if err != nil {
//	    return err
//	}
//	if err := r.Set("shares", -10); err != nil {
//	    // errors.Is(err, validator.ErrBelowMinimum); shares is still 100
//	}
//
// Rejections are the typed errors from package validator, wrapped in
// schema.FieldError, plus ArityMismatchError, DuplicateValueError and
// schema.UnknownFieldError from construction. All of them match
// validator.ErrRejected.
//
// Observers see every commit and rejection. NewLogObserver logs them with
// slog; package metrics counts them for Prometheus.
package record
