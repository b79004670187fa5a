package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSubmission() url.Values {
	return url.Values{
		"title":       {"Engineer"},
		"description": {"Build things"},
		"salary":      {"80000"},
		"email":       {"a@b.com"},
		"city":        {"Metropolis"},
		"state":       {"NY"},
	}
}

func TestParseListing_AllowList(t *testing.T) {
	values := fullSubmission()
	values.Set("user_id", "999")
	values.Set("id", "42")
	values.Set("is_admin", "true")

	f := ParseListing(values)

	for _, fld := range f.Fields() {
		assert.NotEqual(t, "user_id", fld.Name)
		assert.NotEqual(t, "id", fld.Name)
		assert.NotEqual(t, "is_admin", fld.Name)
	}
	assert.Len(t, f.Fields(), 6)
}

func TestParseListing_CanonicalOrder(t *testing.T) {
	values := url.Values{
		"email": {"a@b.com"},
		"title": {"Engineer"},
		"city":  {"Metropolis"},
	}

	f := ParseListing(values)

	names := make([]string, 0, len(f.Fields()))
	for _, fld := range f.Fields() {
		names = append(names, fld.Name)
	}

	assert.Equal(t, []string{"title", "city", "email"}, names)
}

func TestParseListing_TrimsWhitespace(t *testing.T) {
	values := url.Values{
		"title": {"  Engineer  "},
	}

	f := ParseListing(values)

	assert.Equal(t, "Engineer", f.Get("title"))
}

func TestParseListing_MultiValueTreatedAsAbsent(t *testing.T) {
	values := fullSubmission()
	values["title"] = []string{"one", "two"}

	f := ParseListing(values)

	assert.Empty(t, f.Get("title"))

	errs := f.Validate()
	require.Contains(t, errs, "title")
	assert.Equal(t, "Title is required", errs["title"])
}

func TestValidate_AllRequiredPresent(t *testing.T) {
	f := ParseListing(fullSubmission())

	assert.Empty(t, f.Validate())
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		drop    []string
		wantMsg map[string]string
	}{
		{
			name: "missing salary",
			drop: []string{"salary"},
			wantMsg: map[string]string{
				"salary": "Salary is required",
			},
		},
		{
			name: "missing several",
			drop: []string{"title", "email", "state"},
			wantMsg: map[string]string{
				"title": "Title is required",
				"email": "Email is required",
				"state": "State is required",
			},
		},
		{
			name: "missing everything",
			drop: []string{"title", "description", "salary", "email", "city", "state"},
			wantMsg: map[string]string{
				"title":       "Title is required",
				"description": "Description is required",
				"salary":      "Salary is required",
				"email":       "Email is required",
				"city":        "City is required",
				"state":       "State is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := fullSubmission()
			for _, name := range tt.drop {
				values.Del(name)
			}

			errs := ParseListing(values).Validate()

			assert.Equal(t, tt.wantMsg, errs)
		})
	}
}

func TestValidate_BlankCountsAsMissing(t *testing.T) {
	values := fullSubmission()
	values.Set("city", "   ")

	errs := ParseListing(values).Validate()

	require.Contains(t, errs, "city")
	assert.Equal(t, "City is required", errs["city"])
}

func TestValidate_OptionalFieldsNotRequired(t *testing.T) {
	values := fullSubmission()
	values.Set("requirements", "")
	values.Set("phone", "")

	errs := ParseListing(values).Validate()

	assert.Empty(t, errs)
}

func TestValues_EchoesSubmission(t *testing.T) {
	values := fullSubmission()
	values.Set("company", "Acme")

	f := ParseListing(values)
	echoed := f.Values()

	assert.Equal(t, "Engineer", echoed["title"])
	assert.Equal(t, "Acme", echoed["company"])
	assert.NotContains(t, echoed, "phone")
}
