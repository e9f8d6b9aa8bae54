package optional

import "encoding/json"

// An unset Optional encodes as null in both JSON and YAML, and null decodes
// to the unset state, so Optional fields can sit directly in config and
// wire structs.

// IsZero reports whether the value is not set. Encoders use it to elide
// unset fields tagged omitempty or omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.isSet
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.isSet {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.Unset()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Set(v)
	return nil
}

// MarshalYAML implements the go-yaml interface marshaler.
func (o Optional[T]) MarshalYAML() (any, error) {
	if !o.isSet {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML implements the go-yaml interface unmarshaler.
// The node is first decoded untyped to tell null from a value; decoding
// through a *T does not work here, as goccy leaves the pointer nil.
func (o *Optional[T]) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw == nil {
		o.Unset()
		return nil
	}
	var v T
	if err := unmarshal(&v); err != nil {
		return err
	}
	o.Set(v)
	return nil
}
