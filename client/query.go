package client

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

type queryPair struct {
	key   string
	value string
}

// query keeps query entries in insertion order, url.Values would sort them on encode.
type query []queryPair

func parseQuery(raw string) query {
	var ret query
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		ret = append(ret, queryPair{key: unescape(key), value: unescape(value)})
	}
	return ret
}

func unescape(s string) string {
	if ret, err := url.QueryUnescape(s); err == nil {
		return ret
	}
	return s
}

// set replaces the first entry of key and drops the others, or appends when missing.
func (q query) set(key, value string) query {
	var ret query
	found := false
	for _, pair := range q {
		if pair.key != key {
			ret = append(ret, pair)
			continue
		}
		if !found {
			ret = append(ret, queryPair{key: key, value: value})
			found = true
		}
	}
	if !found {
		ret = append(ret, queryPair{key: key, value: value})
	}
	return ret
}

func (q query) add(key, value string) query {
	return append(q, queryPair{key: key, value: value})
}

func (q query) encode() string {
	builder := strings.Builder{}
	for i, pair := range q {
		if i > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(url.QueryEscape(pair.key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.value))
	}
	return builder.String()
}

func applyParams(target *url.URL, params Params) error {
	if len(params) == 0 {
		return nil
	}
	q := parseQuery(target.RawQuery)
	applied := false
	for _, param := range params {
		if isEmptyParam(param.Value) {
			continue
		}
		if values, ok := listValues(param.Value); ok {
			for _, value := range values {
				q = q.add(param.Key, value)
				applied = true
			}
			continue
		}
		value, err := formatScalar(param.Value)
		if err != nil {
			return fmt.Errorf("invalid query param %v: %w", param.Key, err)
		}
		q = q.set(param.Key, value)
		applied = true
	}
	// the existing query is kept byte for byte unless a param was applied
	if applied {
		target.RawQuery = q.encode()
	}
	return nil
}

func isEmptyParam(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return isEmptyParam(v.Elem().Interface())
	}
	return false
}

func listValues(value any) ([]string, bool) {
	switch actual := value.(type) {
	case []string:
		return actual, true
	case []byte:
		return nil, false
	}
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	ret := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		item, err := formatScalar(v.Index(i).Interface())
		if err != nil {
			item = fmt.Sprint(v.Index(i).Interface())
		}
		ret = append(ret, item)
	}
	return ret, true
}

func formatScalar(value any) (string, error) {
	switch actual := value.(type) {
	case nil:
		return "null", nil
	case string:
		return actual, nil
	case []byte:
		return string(actual), nil
	case bool:
		return strconv.FormatBool(actual), nil
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(actual), 'f', -1, 32), nil
	case time.Time:
		return actual.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return actual.String(), nil
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Pointer:
		if v.IsNil() {
			return "null", nil
		}
		return formatScalar(v.Elem().Interface())
	case reflect.Map, reflect.Struct, reflect.Func, reflect.Chan:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
	return fmt.Sprint(value), nil
}
