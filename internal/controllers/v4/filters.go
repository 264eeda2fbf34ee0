package v4

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters adds the name, note and search filters to the query.
//
// Filtering on an empty name or note matches resources where the field is empty.
func stringFilters(db, query *gorm.DB, table string, setFields []string, name, note, search string) *gorm.DB {
	if name != "" {
		query = query.Where(fmt.Sprintf("%s.name LIKE ?", table), fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where(fmt.Sprintf("%s.name = ''", table))
	}

	if note != "" {
		query = query.Where(fmt.Sprintf("%s.note LIKE ?", table), fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where(fmt.Sprintf("%s.note = ''", table))
	}

	if search != "" {
		query = query.Where(
			db.Where(fmt.Sprintf("%s.note LIKE ?", table), fmt.Sprintf("%%%s%%", search)).Or(
				db.Where(fmt.Sprintf("%s.name LIKE ?", table), fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// limit returns the maximum number of resources to return, defaulting to 50.
func limit(setFields []string, l int) int {
	if slices.Contains(setFields, "Limit") {
		return l
	}
	return 50
}
