package config

import (
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "task-manager.com/task-manager/internal/models"
)

const sqliteBusyTimeoutMillis = "5000"

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := openDatabase(dsn, log.New(os.Stderr, "\r\n", log.LstdFlags))
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	return db
}

func openDatabase(dsn string, w logger.Writer) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(dsn)), &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(w),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		return nil, err
	}

	return db, nil
}

// sqliteDSN makes transactions take the write lock up front and wait for a
// busy database instead of failing with SQLITE_BUSY.
func sqliteDSN(dsn string) string {
	var params []string
	if !strings.Contains(dsn, "_txlock=") {
		params = append(params, "_txlock=immediate")
	}
	if !strings.Contains(dsn, "_busy_timeout=") && !strings.Contains(dsn, "_timeout=") {
		params = append(params, "_busy_timeout="+sqliteBusyTimeoutMillis)
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

func newGormLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
