package database

import (
	"fmt"
	"time"
)

// PoolStats is a snapshot of the pgx pool, reported by the health endpoint.
type PoolStats struct {
	AcquiredConns      int32         `json:"acquiredConns"`
	IdleConns          int32         `json:"idleConns"`
	TotalConns         int32         `json:"totalConns"`
	MaxConns           int32         `json:"maxConns"`
	AcquireCount       int64         `json:"acquireCount"`
	EmptyAcquireCount  int64         `json:"emptyAcquireCount"`
	AvgAcquireDuration time.Duration `json:"avgAcquireDurationNs"`
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns:      raw.AcquiredConns(),
		IdleConns:          raw.IdleConns(),
		TotalConns:         raw.TotalConns(),
		MaxConns:           raw.MaxConns(),
		AcquireCount:       raw.AcquireCount(),
		EmptyAcquireCount:  raw.EmptyAcquireCount(),
		AvgAcquireDuration: averageDuration(raw.AcquireDuration(), raw.AcquireCount()),
	}, nil
}

func averageDuration(total time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}
