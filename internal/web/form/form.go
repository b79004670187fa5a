package form

import (
	"net/url"
	"strings"
)

// allowedFields is the only set of input names ever read from a
// submission. Order matters: the storage layer builds its column
// lists from it. user_id is deliberately absent; the handler sets it.
var allowedFields = []string{
	"title", "description", "salary", "requirements", "benefits",
	"tags", "company", "address", "city", "state", "phone", "email",
}

// requiredFields must be non-empty for a create or update to proceed.
var requiredFields = []string{
	"title", "description", "salary", "email", "city", "state",
}

// Field is one submitted allow-listed field.
type Field struct {
	Name  string
	Value string
}

// ListingForm holds the allow-listed fields present in a submission,
// in canonical column order.
type ListingForm struct {
	fields []Field
	byName map[string]string
}

// ParseListing filters submitted values through the allow-list. Fields
// outside the list are dropped silently. A field submitted more than
// once is treated as absent, which guards against array-style form
// injection (a required field submitted as an array fails validation,
// an optional one is ignored).
func ParseListing(values url.Values) *ListingForm {
	f := &ListingForm{byName: make(map[string]string, len(allowedFields))}

	for _, name := range allowedFields {
		vs, ok := values[name]
		if !ok || len(vs) != 1 {
			continue
		}

		v := strings.TrimSpace(vs[0])
		f.fields = append(f.fields, Field{Name: name, Value: v})
		f.byName[name] = v
	}

	return f
}

// Validate checks the required-field set and returns one human-readable
// message per failing field, keyed by field name. An empty map means
// the form may be persisted.
func (f *ListingForm) Validate() map[string]string {
	errs := make(map[string]string)

	for _, name := range requiredFields {
		if v, ok := f.byName[name]; !ok || v == "" {
			errs[name] = fieldLabel(name) + " is required"
		}
	}

	return errs
}

// Fields returns the present allow-listed fields in column order.
func (f *ListingForm) Fields() []Field {
	return f.fields
}

// Get returns the submitted value for name, or "" if absent.
func (f *ListingForm) Get(name string) string {
	return f.byName[name]
}

// Values returns a name-to-value map for echoing a submission back
// into a re-rendered form.
func (f *ListingForm) Values() map[string]string {
	out := make(map[string]string, len(f.byName))
	for k, v := range f.byName {
		out[k] = v
	}
	return out
}

func fieldLabel(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}
