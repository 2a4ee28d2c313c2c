package mapper

import (
	"time"

	"gmls/domain"
)

// Cast-with-default helpers. The remote document store hands back untyped
// field maps; every read here coerces to the wanted type and substitutes
// the per-field fallback on any mismatch, so the mapping functions stay
// total over arbitrary payloads.

func stringField(doc domain.Document, key, fallback string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return fallback
}

// numberField widens any numeric wire representation to a double before
// the caller narrows it.
func numberField(doc domain.Document, key string, fallback float64) float64 {
	switch v := doc[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}

func intField(doc domain.Document, key string, fallback int) int {
	return int(numberField(doc, key, float64(fallback)))
}

func boolField(doc domain.Document, key string, fallback bool) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return fallback
}

// stringListField keeps only the well-typed elements; anything else in the
// list is dropped. A missing or ill-typed field yields an empty list.
func stringListField(doc domain.Document, key string) []string {
	out := []string{}
	raw, ok := doc[key].([]interface{})
	if !ok {
		return out
	}

	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}

	return out
}

// timeField accepts either a database-native timestamp or a raw epoch
// millisecond number, falling back otherwise.
func timeField(doc domain.Document, key string, fallback time.Time) time.Time {
	switch v := doc[key].(type) {
	case time.Time:
		return v
	case float64:
		return time.UnixMilli(int64(v))
	case int64:
		return time.UnixMilli(v)
	case int:
		return time.UnixMilli(int64(v))
	}
	return fallback
}

// timePtrField is timeField for nullable date fields: absence stays nil.
func timePtrField(doc domain.Document, key string) *time.Time {
	switch v := doc[key].(type) {
	case time.Time:
		return &v
	case float64:
		t := time.UnixMilli(int64(v))
		return &t
	case int64:
		t := time.UnixMilli(v)
		return &t
	case int:
		t := time.UnixMilli(int64(v))
		return &t
	}
	return nil
}

func subDocument(doc domain.Document, key string) domain.Document {
	if v, ok := doc[key].(map[string]interface{}); ok {
		return v
	}
	return domain.Document{}
}

func documentList(doc domain.Document, key string) []domain.Document {
	out := []domain.Document{}
	raw, ok := doc[key].([]interface{})
	if !ok {
		return out
	}

	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}

	return out
}
