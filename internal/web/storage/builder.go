package storage

import (
	"fmt"
	"strings"

	"github.com/cuongbtq/workopia-be/internal/web/form"
)

// buildListingInsert assembles a parameterized INSERT over exactly the
// allow-listed fields present in the form, plus user_id. Column names
// only ever come from the form's compile-time allow-list; values are
// always bound. Empty strings are written as NULL.
func buildListingInsert(f *form.ListingForm, userID int64) (string, []interface{}) {
	fields := f.Fields()

	cols := make([]string, 0, len(fields)+1)
	placeholders := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+1)

	for i, fld := range fields {
		cols = append(cols, fld.Name)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, nullable(fld.Value))
	}

	cols = append(cols, "user_id")
	placeholders = append(placeholders, fmt.Sprintf("$%d", len(fields)+1))
	args = append(args, userID)

	query := fmt.Sprintf(
		"INSERT INTO listings (%s) VALUES (%s) RETURNING id",
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)

	return query, args
}

// buildListingUpdate assembles a parameterized UPDATE over exactly the
// allow-listed fields present in the form, with the id as the final
// bound condition. Callers must validate first: at least the required
// fields are always present by the time this runs.
func buildListingUpdate(f *form.ListingForm, id int64) (string, []interface{}) {
	fields := f.Fields()

	sets := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)

	for i, fld := range fields {
		sets = append(sets, fmt.Sprintf("%s = $%d", fld.Name, i+1))
		args = append(args, nullable(fld.Value))
	}

	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE listings SET %s WHERE id = $%d",
		strings.Join(sets, ", "),
		len(fields)+1,
	)

	return query, args
}

func nullable(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}
