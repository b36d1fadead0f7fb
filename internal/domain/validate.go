package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"net/mail"
	"sort"
	"strings"
	"time"
)

// Policy decides what happens to input keys a kind does not recognize.
type Policy int

const (
	// Lenient ignores unknown keys; used when echoing stored documents.
	Lenient Policy = iota
	// Strict reports every unknown key as a violation; used on client input.
	Strict
)

const dateLayout = "2006-01-02"

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError lists every violation found in one input, not only the first.
type ValidationError struct {
	Kind   Kind
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Rule))
	}
	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(parts, ", "))
}

// fields walks a raw input map, collecting violations as it goes.
type fields struct {
	raw   map[string]any
	known map[string]bool
	errs  []FieldError
}

func newFields(raw map[string]any) *fields {
	if raw == nil {
		raw = map[string]any{}
	}
	return &fields{raw: raw, known: map[string]bool{"_id": true}}
}

func (f *fields) fail(field, rule, msg string) {
	f.errs = append(f.errs, FieldError{Field: field, Rule: rule, Message: msg})
}

// lookup returns the value for key, treating explicit null as absent.
func (f *fields) lookup(key string) (any, bool) {
	f.known[key] = true
	v, ok := f.raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (f *fields) id() string {
	if v, ok := f.raw["_id"].(string); ok {
		return v
	}
	return ""
}

func (f *fields) requiredString(key string) string {
	v, ok := f.lookup(key)
	if !ok {
		f.fail(key, "required", "field required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail(key, "type", "must be a string")
		return ""
	}
	if strings.TrimSpace(s) == "" {
		f.fail(key, "non_empty", "must not be empty")
		return ""
	}
	return s
}

func (f *fields) optionalString(key string) *string {
	v, ok := f.lookup(key)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		f.fail(key, "type", "must be a string")
		return nil
	}
	return &s
}

func (f *fields) requiredEmail(key string) string {
	s := f.requiredString(key)
	if s != "" && !ValidEmail(s) {
		f.fail(key, "email", "must be a valid email address")
		return ""
	}
	return s
}

func (f *fields) optionalEmail(key string) *string {
	s := f.optionalString(key)
	if s != nil && !ValidEmail(*s) {
		f.fail(key, "email", "must be a valid email address")
		return nil
	}
	return s
}

func (f *fields) optionalInt(key string, min int) *int {
	v, ok := f.lookup(key)
	if !ok {
		return nil
	}
	n, ok := number(v)
	if !ok || n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		f.fail(key, "type", "must be an integer")
		return nil
	}
	i := int(n)
	if i < min {
		f.fail(key, "ge", fmt.Sprintf("must be greater than or equal to %d", min))
		return nil
	}
	return &i
}

func (f *fields) optionalFloat(key string, min float64) *float64 {
	v, ok := f.lookup(key)
	if !ok {
		return nil
	}
	n, ok := number(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		f.fail(key, "type", "must be a number")
		return nil
	}
	if n < min {
		f.fail(key, "ge", fmt.Sprintf("must be greater than or equal to %g", min))
		return nil
	}
	return &n
}

// stringList always returns a non-nil slice so absent lists encode as [].
func (f *fields) stringList(key string) []string {
	out := []string{}
	v, ok := f.lookup(key)
	if !ok {
		return out
	}
	switch xs := v.(type) {
	case []string:
		return append(out, xs...)
	case []any:
		for i, x := range xs {
			s, ok := x.(string)
			if !ok {
				f.fail(fmt.Sprintf("%s[%d]", key, i), "type", "must be a string")
				continue
			}
			out = append(out, s)
		}
		return out
	default:
		f.fail(key, "type", "must be a list of strings")
		return out
	}
}

func (f *fields) stringMap(key string) map[string]string {
	out := map[string]string{}
	v, ok := f.lookup(key)
	if !ok {
		return out
	}
	var m map[string]any
	switch x := v.(type) {
	case map[string]string:
		for k, s := range x {
			out[k] = s
		}
		return out
	case map[string]any:
		m = x
	case Document:
		m = x
	default:
		f.fail(key, "type", "must be an object of strings")
		return out
	}
	for k, x := range m {
		s, ok := x.(string)
		if !ok {
			f.fail(key+"."+k, "type", "must be a string")
			continue
		}
		out[k] = s
	}
	return out
}

// optionalDate accepts "YYYY-MM-DD" strings or time.Time values and
// normalizes both to the string form.
func (f *fields) optionalDate(key string) *string {
	v, ok := f.lookup(key)
	if !ok {
		return nil
	}
	switch d := v.(type) {
	case time.Time:
		s := d.UTC().Format(dateLayout)
		return &s
	case string:
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			f.fail(key, "date", "must be a date in YYYY-MM-DD format")
			return nil
		}
		s := t.Format(dateLayout)
		return &s
	default:
		f.fail(key, "type", "must be a date string")
		return nil
	}
}

func (f *fields) finish(kind Kind, policy Policy) error {
	if policy == Strict {
		var extra []string
		for k := range f.raw {
			if !f.known[k] {
				extra = append(extra, k)
			}
		}
		sort.Strings(extra)
		for _, k := range extra {
			f.fail(k, "unknown", "extra fields not permitted")
		}
	}
	if len(f.errs) == 0 {
		return nil
	}
	return &ValidationError{Kind: kind, Fields: f.errs}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		x, err := n.Float64()
		return x, err == nil
	}
	return 0, false
}

// ValidEmail reports whether s is a bare addr-spec with a dotted domain.
func ValidEmail(s string) bool {
	if strings.TrimSpace(s) != s || s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 {
		return false
	}
	domain := s[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") ||
		strings.HasSuffix(domain, ".") || strings.Contains(domain, "..") {
		return false
	}
	return true
}
