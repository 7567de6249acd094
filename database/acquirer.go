package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"tasknest/tasknest/config"

	"gorm.io/gorm"
)

// ErrConnectionFailed marks connection failures that survived every retry.
// Handlers map it to a 5xx response; it is never fatal to the process.
var ErrConnectionFailed = errors.New("database connection failed")

// ConnectFunc is the primitive the acquirer retries. Tests substitute one
// with scripted failures.
type ConnectFunc func(cfg config.Config) (*gorm.DB, error)

// Acquirer establishes a request-scoped database connection with a bounded
// retry policy: up to MaxAttempts tries with a fixed RetryDelay between
// failed attempts.
type Acquirer struct {
	MaxAttempts int
	RetryDelay  time.Duration
	Connect     ConnectFunc
}

func NewAcquirer() *Acquirer {
	return &Acquirer{
		MaxAttempts: 5,
		RetryDelay:  2 * time.Second,
		Connect:     openPostgres,
	}
}

// Acquire returns a live connection as soon as one attempt succeeds. After
// exhausting all attempts it returns nil and an ErrConnectionFailed-wrapped
// error carrying the last cause.
func (a *Acquirer) Acquire(cfg config.Config) (*Database, error) {
	var lastErr error
	for attempt := 1; attempt <= a.MaxAttempts; attempt++ {
		db, err := a.Connect(cfg)
		if err == nil {
			log.Printf("Connected to database at %s", cfg.DBHost)
			return &Database{DB: db}, nil
		}
		lastErr = err
		log.Printf("Database connection attempt %d/%d failed: %v", attempt, a.MaxAttempts, err)
		if attempt < a.MaxAttempts {
			time.Sleep(a.RetryDelay)
		}
	}
	log.Printf("Could not connect to database after %d attempts", a.MaxAttempts)
	return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, lastErr)
}
