package policy

import (
	"testing"

	"github.com/Masterminds/squirrel"

	"github.com/tsepo/luctreport/internal/app/models"
)

// buildWhere renders the predicates into SQL the way the repository does, so
// the tests check both the clauses and the parameter binding order.
func buildWhere(t *testing.T, q ReportQuery) (string, []interface{}) {
	t.Helper()

	builder := squirrel.Select("r.id").
		From("reports r").
		PlaceholderFormat(squirrel.Dollar)
	for _, pred := range ReportPredicates(q) {
		builder = builder.Where(pred)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		t.Fatalf("ToSql returned error: %v", err)
	}
	return sql, args
}

func TestReportPredicatesNoFilters(t *testing.T) {
	preds := ReportPredicates(ReportQuery{Role: models.RoleProgramLeader})
	if len(preds) != 0 {
		t.Fatalf("expected no predicates, got %d", len(preds))
	}
}

func TestReportPredicatesStudentUnrestricted(t *testing.T) {
	preds := ReportPredicates(ReportQuery{Role: models.RoleStudent, UserID: 7, Stream: "BIT"})
	if len(preds) != 0 {
		t.Fatalf("expected no predicates for student, got %d", len(preds))
	}
}

func TestReportPredicatesLecturerOwnership(t *testing.T) {
	sql, args := buildWhere(t, ReportQuery{Role: models.RoleLecturer, UserID: 42})

	want := "SELECT r.id FROM reports r WHERE r.created_by = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != int64(42) {
		t.Errorf("args = %v, want [42]", args)
	}
}

func TestReportPredicatesPrincipalLecturerStream(t *testing.T) {
	sql, args := buildWhere(t, ReportQuery{Role: models.RolePrincipalLecturer, Stream: "BIT"})

	want := "SELECT r.id FROM reports r WHERE r.faculty_name ILIKE $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "%BIT%" {
		t.Errorf("args = %v, want [%%BIT%%]", args)
	}
}

func TestReportPredicatesPrincipalLecturerWithoutStream(t *testing.T) {
	preds := ReportPredicates(ReportQuery{Role: models.RolePrincipalLecturer})
	if len(preds) != 0 {
		t.Fatalf("expected no predicates without a stream, got %d", len(preds))
	}
}

func TestReportPredicatesSearchBeforeRoleRule(t *testing.T) {
	sql, args := buildWhere(t, ReportQuery{
		Search: "web",
		Role:   models.RoleLecturer,
		UserID: 9,
	})

	want := "SELECT r.id FROM reports r" +
		" WHERE (r.course_name ILIKE $1 OR r.lecturer_name ILIKE $2 OR r.class_name ILIKE $3)" +
		" AND r.created_by = $4"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}

	wantArgs := []interface{}{"%web%", "%web%", "%web%", int64(9)}
	if len(args) != len(wantArgs) {
		t.Fatalf("got %d args, want %d", len(args), len(wantArgs))
	}
	for i := range wantArgs {
		if args[i] != wantArgs[i] {
			t.Errorf("args[%d] = %v, want %v", i, args[i], wantArgs[i])
		}
	}
}

func TestReportPredicatesUnknownRole(t *testing.T) {
	preds := ReportPredicates(ReportQuery{Role: models.Role("admin"), UserID: 1})
	if len(preds) != 0 {
		t.Fatalf("expected unknown role to add no predicates, got %d", len(preds))
	}
}
