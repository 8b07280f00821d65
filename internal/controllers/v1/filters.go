package v1

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// textFilter filters for column containing value. If the parameter was
// set in the query string without a value, it filters for an empty column.
func textFilter(query *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return query.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	}

	if slices.Contains(setFields, field) {
		return query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}

// searchFilter filters for search being contained in any of the columns.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}

	conditions := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, fmt.Sprintf("%s LIKE ?", column))
		args = append(args, fmt.Sprintf("%%%s%%", search))
	}

	return query.Where(db.Where(strings.Join(conditions, " OR "), args...))
}

// paginate applies offset and limit. The limit defaults to 50.
func paginate(query *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	if !slices.Contains(setFields, "Limit") {
		limit = 50
	}

	return query.Offset(int(offset)).Limit(limit), limit
}
