package core

import (
	"strings"

	"github.com/pkg/errors"
)

type DBOrdering struct {
	Field     string
	Ascending bool
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}

// OrderByClause builds an `ORDER BY` clause from orderings whose fields are all in `allowed`.
// It returns an empty string when no ordering is given.
func OrderByClause(allowed []string, ordering ...DBOrdering) (string, error) {
	if len(ordering) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(ordering))
	for _, ord := range ordering {
		if !containsString(allowed, ord.Field) {
			return "", errors.Errorf("invalid ordering field %q", ord.Field)
		}
		parts = append(parts, ord.String())
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
