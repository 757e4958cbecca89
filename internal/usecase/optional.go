package usecase

import "encoding/json"

// Optional distinguishes three JSON states for a PATCH field: absent from the
// payload, explicitly null, and present with a value. A plain pointer cannot
// separate "absent" from "null", which matters for clearing nullable columns.
type Optional[T any] struct {
	// Set is true when the field appeared in the payload at all.
	Set bool
	// Valid is true when the field carried a non-null value.
	Valid bool
	Value T
}

// NewOptional builds a present, non-null Optional. Mostly useful in tests.
func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: value}
}

// NewNullOptional builds a present but explicitly null Optional.
func NewNullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked for fields present in the payload, so Set is
// always true here; absent fields keep the zero Optional.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false

		return nil
	}

	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true

	return nil
}
