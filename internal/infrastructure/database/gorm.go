package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	catalog "bookstore-api/internal/domains/catalog/model"
	user "bookstore-api/internal/domains/user/model"
	"bookstore-api/pkg/logger"
)

// slowQueryThreshold marks statements that get logged as warnings.
const slowQueryThreshold = 200 * time.Millisecond

// OpenGorm puts the ORM on top of the already connected pgx pool so that
// pool sizing, retry and health checks stay in one place.
func (db *PostgresDB) OpenGorm() (*gorm.DB, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: NewGormLogger(db.log),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return gdb, nil
}

// Migrate creates or alters every table owned by the application.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&catalog.Author{},
		&catalog.Book{},
		&user.User{},
		&user.UserRole{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping checks the store through the ORM connection. Works for every dialect.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// gormLogger routes ORM logs into the application logger.
type gormLogger struct {
	log   logger.Logger
	level gormlogger.LogLevel
}

// NewGormLogger adapts logger.Logger to gorm's logger interface.
func NewGormLogger(log logger.Logger) gormlogger.Interface {
	return &gormLogger{log: log, level: gormlogger.Warn}
}

func (g *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.log.Info("[GORM] "+fmt.Sprintf(msg, args...), nil)
	}
}

func (g *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.log.Warn("[GORM] "+fmt.Sprintf(msg, args...), nil)
	}
}

func (g *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.log.Error("[GORM] "+fmt.Sprintf(msg, args...), nil)
	}
}

func (g *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		sql, rows := fc()
		g.log.Error(fmt.Sprintf("[GORM] %s (rows=%d, %s)", sql, rows, elapsed), err)
	case elapsed > slowQueryThreshold && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.log.Warn("[GORM] slow query", map[string]interface{}{
			"sql":     sql,
			"rows":    rows,
			"elapsed": elapsed.String(),
		})
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.log.Debug(fmt.Sprintf("[GORM] %s (rows=%d, %s)", sql, rows, elapsed))
	}
}
