package output

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies which variant of the renderable union a value is.
type Kind int

const (
	// KindScalar is a single non-structured value.
	KindScalar Kind = iota
	// KindRecord is a single flat record of string keys to values.
	KindRecord
	// KindScalarList is an ordered list of scalars.
	KindScalarList
	// KindRecordList is an ordered list of records.
	KindRecordList
)

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value any
}

// Record is a flat record with a stable key order. Unlike a map, iterating
// a Record always yields keys in insertion order, which keeps JSON, YAML,
// and table output deterministic.
type Record []Field

// Get returns the value for key and whether the key is present.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON serializes the record as an object, preserving field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			// Best effort for unserializable values
			val = []byte(`null`)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return []byte(buf.String()), nil
}

// MarshalYAML serializes the record as a mapping, preserving field order.
func (r Record) MarshalYAML() (any, error) {
	items := make(yaml.MapSlice, 0, len(r))
	for _, f := range r {
		items = append(items, yaml.MapItem{Key: f.Key, Value: f.Value})
	}
	return items, nil
}

// Value is the renderable union resolved by Classify. Exactly one of the
// variant fields is meaningful, selected by Kind.
type Value struct {
	Kind    Kind
	Scalar  any
	Record  Record
	Scalars []any
	Records []Record
}

// Classify resolves arbitrary data into the renderable union once, so that
// each rendering branch works against a single variant instead of running
// ad hoc type checks through the formatting logic.
func Classify(data any) Value {
	switch v := data.(type) {
	case nil:
		return Value{Kind: KindScalar, Scalar: nil}
	case Record:
		return Value{Kind: KindRecord, Record: v}
	case []Record:
		return Value{Kind: KindRecordList, Records: v}
	case time.Time, utc.Time:
		return Value{Kind: KindScalar, Scalar: v}
	case string, []byte:
		return Value{Kind: KindScalar, Scalar: v}
	}

	rv := reflect.ValueOf(data)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Value{Kind: KindScalar, Scalar: nil}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return classifyList(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return Value{Kind: KindRecord, Record: mapToRecord(rv)}
		}
		return Value{Kind: KindScalar, Scalar: data}
	case reflect.Struct:
		return Value{Kind: KindRecord, Record: structToRecord(rv)}
	default:
		return Value{Kind: KindScalar, Scalar: rv.Interface()}
	}
}

// classifyList decides between list-of-records and list-of-scalars by
// inspecting the first non-nil element. An empty list classifies as an
// empty record list; both empty variants render the same placeholder.
func classifyList(rv reflect.Value) Value {
	n := rv.Len()
	if n == 0 {
		return Value{Kind: KindRecordList}
	}

	recordish := false
	for i := 0; i < n; i++ {
		elem := rv.Index(i).Interface()
		if elem == nil {
			continue
		}
		recordish = isRecordish(elem)
		break
	}

	if recordish {
		records := make([]Record, 0, n)
		for i := 0; i < n; i++ {
			records = append(records, toRecord(rv.Index(i).Interface()))
		}
		return Value{Kind: KindRecordList, Records: records}
	}

	scalars := make([]any, 0, n)
	for i := 0; i < n; i++ {
		scalars = append(scalars, rv.Index(i).Interface())
	}
	return Value{Kind: KindScalarList, Scalars: scalars}
}

// isRecordish reports whether a list element renders as a table row.
func isRecordish(v any) bool {
	switch v.(type) {
	case Record:
		return true
	case time.Time, utc.Time, string, []byte:
		return false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	default:
		return false
	}
}

// toRecord converts a single list element into a Record, degrading rather
// than failing for elements that have no record shape.
func toRecord(v any) Record {
	if v == nil {
		return Record{}
	}
	if r, ok := v.(Record); ok {
		return r
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Record{}
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return structToRecord(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return mapToRecord(rv)
		}
	}
	return Record{{Key: "value", Value: v}}
}

// mapToRecord converts a string-keyed map to a Record. Map iteration order
// is randomized in Go, so keys are sorted to keep rendering deterministic.
// The original key values are kept for indexing, since the key type may be
// a defined string type rather than plain string.
func mapToRecord(rv reflect.Value) Record {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	record := make(Record, 0, len(keys))
	for _, k := range keys {
		record = append(record, Field{Key: k.String(), Value: rv.MapIndex(k).Interface()})
	}
	return record
}

// structToRecord converts a struct to a Record using json tag names where
// present, in field declaration order.
func structToRecord(rv reflect.Value) Record {
	t := rv.Type()
	record := make(Record, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		omitEmpty := false
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitEmpty = true
				}
			}
		}

		value := rv.Field(i)
		if omitEmpty && value.IsZero() {
			continue
		}
		record = append(record, Field{Key: name, Value: value.Interface()})
	}
	return record
}

// TitleCase humanizes an identifier-style key for display headers, e.g.
// "created_at" becomes "Created At". The renderer itself keeps keys as-is;
// table-bound presentation records apply this when they are built.
func TitleCase(key string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(key, "_", " "))
}
