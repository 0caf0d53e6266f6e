package jsonpath

import (
	"encoding/json"
	"reflect"

	"github.com/arthur-debert/dictator/pkg/errors"
)

// Normalize converts v to the shapes encoding/json decodes into, so that
// values coming from YAML, TOML or Go literals compare equal to values read
// from a JSON document.
func Normalize(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "value is not JSON encodable")
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "value is not JSON encodable")
	}
	return out, nil
}

// Equal reports whether two values are deeply equal once normalized
func Equal(a, b interface{}) bool {
	na, err := Normalize(a)
	if err != nil {
		return false
	}
	nb, err := Normalize(b)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(na, nb)
}
