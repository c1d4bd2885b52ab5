package webapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// Params is the flat query string of a request. Values are already in their
// wire form; keys that are absent are never sent.
type Params map[string]string

// Set stores v under key. Strings, integers and booleans are formatted the
// way the Web API expects; anything else falls back to fmt.
func (p Params) Set(key string, v any) Params {
	p[key] = format(v)
	return p
}

// SetList stores each element as key[i], keeping input order.
func SetList[T any](p Params, key string, values []T) Params {
	for i, v := range values {
		p.Set(fmt.Sprintf("%s[%d]", key, i), v)
	}
	return p
}

// SetOptional stores *v under key only when v is non-nil.
func SetOptional[T any](p Params, key string, v *T) Params {
	if v != nil {
		p.Set(key, *v)
	}
	return p
}

// SetNonZero stores v under key unless it is the zero value.
func SetNonZero[T comparable](p Params, key string, v T) Params {
	var zero T
	if v != zero {
		p.Set(key, v)
	}
	return p
}

// SetJSON stores the JSON encoding of v as a single value. A nil slice is
// encoded as an empty array, never as null.
func (p Params) SetJSON(key string, v any) (Params, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.IsNil() {
		v = reflect.MakeSlice(rv.Type(), 0, 0).Interface()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return p, err
	}
	p[key] = string(b)
	return p, nil
}

// Values converts p into url.Values, optionally leaving out some keys.
func (p Params) Values(exclude ...string) url.Values {
	values := make(url.Values, len(p))
	for k, v := range p {
		values.Set(k, v)
	}
	for _, k := range exclude {
		values.Del(k)
	}
	return values
}

func format(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
