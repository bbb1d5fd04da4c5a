// internal/db/migrations/migrations_test.go
package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestParseFilename(t *testing.T) {
	version, name, err := parseFilename("0003_create_send_queue.up.sql")
	if err != nil {
		t.Fatalf("parseFilename returned error: %v", err)
	}
	if version != 3 {
		t.Errorf("expected version 3, got %d", version)
	}
	if name != "create_send_queue" {
		t.Errorf("expected name create_send_queue, got %s", name)
	}
}

func TestParseFilenameRejectsMalformed(t *testing.T) {
	cases := []string{
		"create_campaigns.sql",
		"0001.up.sql",
		"abc_create_campaigns.up.sql",
	}
	for _, filename := range cases {
		if _, _, err := parseFilename(filename); err == nil {
			t.Errorf("expected error for %s, got nil", filename)
		}
	}
}

func TestLoadPendingSkipsAppliedAndSorts(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_create_customers.up.sql":   {Data: []byte("CREATE TABLE customers ()")},
		"0001_create_campaigns.up.sql":   {Data: []byte("CREATE TABLE campaigns ()")},
		"0003_create_events.up.sql":      {Data: []byte("CREATE TABLE events ()")},
		"0001_create_campaigns.down.sql": {Data: []byte("DROP TABLE campaigns")},
	}

	pending, err := loadPending(fsys, map[int]bool{2: true})
	if err != nil {
		t.Fatalf("loadPending returned error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending migrations, got %d", len(pending))
	}
	if pending[0].version != 1 || pending[1].version != 3 {
		t.Errorf("expected versions [1 3], got [%d %d]", pending[0].version, pending[1].version)
	}
	if pending[0].sql != "CREATE TABLE campaigns ()" {
		t.Errorf("unexpected migration sql: %s", pending[0].sql)
	}
}

func TestLoadPendingRejectsDuplicateVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"0001_create_campaigns.up.sql": {Data: []byte("CREATE TABLE campaigns ()")},
		"0001_create_customers.up.sql": {Data: []byte("CREATE TABLE customers ()")},
	}

	if _, err := loadPending(fsys, nil); err == nil {
		t.Fatal("expected duplicate version error, got nil")
	}
}

func TestMigrateAppliesPendingInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	fsys := fstest.MapFS{
		"0001_create_campaigns.up.sql": {Data: []byte("CREATE TABLE campaigns ()")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE campaigns").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs(1, "create_campaigns").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := Migrate(db, fsys); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMigrateSkipsAlreadyApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	fsys := fstest.MapFS{
		"0001_create_campaigns.up.sql": {Data: []byte("CREATE TABLE campaigns ()")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))

	if err := Migrate(db, fsys); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
