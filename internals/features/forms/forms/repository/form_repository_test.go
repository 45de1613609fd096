package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements without a server and records every delete it renders.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	var statements []string
	if err := db.Callback().Delete().After("gorm:delete").Register("test:record", func(d *gorm.DB) {
		statements = append(statements, d.Statement.SQL.String())
	}); err != nil {
		t.Fatalf("register callback: %v", err)
	}
	return db, &statements
}

func TestDeleteFormCascade_SoftDeletesSubmissions(t *testing.T) {
	t.Parallel()

	db, statements := dryRunDB(t)
	if _, err := deleteFormCascade(db.Session(&gorm.Session{}), uuid.New()); err != nil {
		t.Fatalf("deleteFormCascade: %v", err)
	}

	got := *statements
	if len(got) != 2 {
		t.Fatalf("statements = %q", got)
	}
	if !strings.HasPrefix(got[0], `UPDATE "form_submissions" SET "form_submission_deleted_at"`) ||
		!strings.Contains(got[0], "form_submission_form_id = ") {
		t.Fatalf("submissions statement = %q", got[0])
	}
	if !strings.HasPrefix(got[1], `UPDATE "forms" SET "form_deleted_at"`) {
		t.Fatalf("form statement = %q", got[1])
	}
}
