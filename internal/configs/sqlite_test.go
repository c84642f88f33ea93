package config

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"

	model "task-manager.com/task-manager/internal/models"
)

func TestSqliteDSN(t *testing.T) {
	cases := map[string]string{
		"tasks.db":                         "tasks.db?_txlock=immediate&_busy_timeout=5000",
		"file:x?mode=memory":               "file:x?mode=memory&_txlock=immediate&_busy_timeout=5000",
		"tasks.db?_txlock=exclusive":       "tasks.db?_txlock=exclusive&_busy_timeout=5000",
		"tasks.db?_busy_timeout=100":       "tasks.db?_busy_timeout=100&_txlock=immediate",
		"a.db?_txlock=deferred&_timeout=1": "a.db?_txlock=deferred&_timeout=1",
	}

	for in, want := range cases {
		if got := sqliteDSN(in); got != want {
			t.Errorf("sqliteDSN(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestOpenDatabase_RecordNotFoundIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	db, err := openDatabase(filepath.Join(t.TempDir(), "tasks.db"), log.New(&buf, "", 0))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	var task model.Task
	err = db.First(&task, "id = ?", 404).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	if strings.Contains(buf.String(), "record not found") {
		t.Errorf("missing record was logged: %q", buf.String())
	}
}
