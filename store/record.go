package store

import "encoding/json"

// Store names. The set is fixed; the storage layer itself attaches no
// meaning to them beyond using them as keys and file names.
const (
	StoreProducts     = "products"
	StoreTransactions = "transactions"
	StoreExpenses     = "expenses"
)

// Names lists every store in load order.
func Names() []string {
	return []string{StoreProducts, StoreTransactions, StoreExpenses}
}

// Record is a schema-less entity: named fields mapped to JSON values. The
// storage layer only ever touches the "id" field; everything else is opaque
// and interpreted by the typed facades.
type Record map[string]any

// ID returns the record's id, or 0 when the field is absent or not a
// positive number. Records decoded from JSON carry float64 ids; records
// built in-process carry int64.
func (r Record) ID() int64 {
	switch v := r["id"].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Clone returns a deep copy, so callers can hand out records without
// exposing the cached originals to mutation.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return cloneValue(r).(Record)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Record:
		out := make(Record, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return t
	}
}

func cloneAll(recs []Record) []Record {
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = r.Clone()
	}
	return out
}

// Encode converts a typed value into a Record via its JSON form.
func Encode(v any) (Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// EncodeAll converts a slice of typed values into records.
func EncodeAll[T any](vs []T) ([]Record, error) {
	out := make([]Record, 0, len(vs))
	for _, v := range vs {
		rec, err := Encode(v)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Decode converts a record into a typed value via its JSON form.
func Decode[T any](rec Record) (T, error) {
	var out T
	b, err := json.Marshal(rec)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(b, &out)
	return out, err
}

// DecodeAll converts records into typed values, preserving order.
func DecodeAll[T any](recs []Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v, err := Decode[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
