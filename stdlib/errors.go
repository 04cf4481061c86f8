package stdlib

import "fmt"

// CastError reports a cast-to-class failure (SPEC_FULL 4.B/§7 kind 4):
// either the target class has no from-text parser, or from-text itself
// failed.
type CastError struct {
	Target string
	Cause  error
}

func (e *CastError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stdlib: cast to %q failed: %v", e.Target, e.Cause)
	}
	return fmt.Sprintf("stdlib: class %q has no from-text parser", e.Target)
}

func (e *CastError) Unwrap() error { return e.Cause }

// FieldError reports a field get/set on a class without field support, or
// an invalid key (§7 kind 4).
type FieldError struct {
	Class string
	Key   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("stdlib: class %q has no field %q", e.Class, e.Key)
}

// CoercionError reports an object-coercion failure, e.g. number from
// non-numeric text (§7 kind 4).
type CoercionError struct {
	Class string
	Want  string
	Cause error
}

func (e *CoercionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stdlib: %s: cannot coerce to %s: %v", e.Class, e.Want, e.Cause)
	}
	return fmt.Sprintf("stdlib: %s: cannot coerce to %s", e.Class, e.Want)
}

func (e *CoercionError) Unwrap() error { return e.Cause }

// VariantError reports an invalid variant string passed to SetVariant.
type VariantError struct {
	Class   string
	Variant string
	Reason  string
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("stdlib: %s: invalid variant %q: %s", e.Class, e.Variant, e.Reason)
}
