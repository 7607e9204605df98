// Package policy holds the role-based visibility rules for list endpoints.
// The rules are kept as a data table so the policy can be audited and tested
// without touching query construction.
package policy

import (
	"github.com/Masterminds/squirrel"

	"github.com/tsepo/luctreport/internal/app/models"
)

// ReportQuery is the caller-supplied filter input for the reports list.
type ReportQuery struct {
	Search string
	Role   models.Role
	UserID int64
	Stream string
}

// reportRoleRules maps each role to its additional reports restriction.
// A nil entry or a nil returned Sqlizer means no restriction.
//
//	lecturer           -> created_by = caller id
//	principal_lecturer -> faculty_name contains the stream (only with a stream)
//	program_leader     -> none
//	student            -> none
var reportRoleRules = map[models.Role]func(q ReportQuery) squirrel.Sqlizer{
	models.RoleLecturer: func(q ReportQuery) squirrel.Sqlizer {
		return squirrel.Eq{"r.created_by": q.UserID}
	},
	models.RolePrincipalLecturer: func(q ReportQuery) squirrel.Sqlizer {
		if q.Stream == "" {
			return nil
		}
		return squirrel.ILike{"r.faculty_name": "%" + q.Stream + "%"}
	},
}

// ReportPredicates returns the WHERE predicates for a reports list request,
// in the fixed order they must be appended: free-text search first, then the
// role restriction. Parameter binding order follows predicate order.
func ReportPredicates(q ReportQuery) []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		preds = append(preds, squirrel.Or{
			squirrel.ILike{"r.course_name": pattern},
			squirrel.ILike{"r.lecturer_name": pattern},
			squirrel.ILike{"r.class_name": pattern},
		})
	}

	if rule, ok := reportRoleRules[q.Role]; ok {
		if p := rule(q); p != nil {
			preds = append(preds, p)
		}
	}

	return preds
}
