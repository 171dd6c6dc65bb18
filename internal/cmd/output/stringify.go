package output

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/agentstation/utc"
)

// Stringify converts a single value to its display form. This is the one
// stringification function shared by the list, table-cell, and record
// rendering paths:
//
//   - nil renders as the empty string
//   - booleans and numbers render in their literal textual form
//   - time values render as RFC 3339 strings
//   - strings render unchanged
//   - any other structured value renders as its compact JSON serialization,
//     falling back to the default %v form if that serialization fails
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339)
	case utc.Time:
		return t.Time.Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(time.RFC3339)
	case *utc.Time:
		if t == nil {
			return ""
		}
		return t.Time.Format(time.RFC3339)
	case error:
		return t.Error()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	}

	b, err := json.Marshal(rv.Interface())
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
