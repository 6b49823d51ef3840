package domain

// Patch is a tri-state field for partial updates:
//   - Set == false: field omitted, leave the stored value untouched
//   - Set == true, Value == nil: explicit null, clear the stored value
//   - Set == true, Value != nil: overwrite with *Value
type Patch[T any] struct {
	Set   bool
	Value *T
}

// SetTo returns a Patch that overwrites the field with v.
func SetTo[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Value: &v}
}

// SetNull returns a Patch that clears the field.
func SetNull[T any]() Patch[T] {
	return Patch[T]{Set: true}
}

// IsNull reports an explicit null.
func (p Patch[T]) IsNull() bool {
	return p.Set && p.Value == nil
}
