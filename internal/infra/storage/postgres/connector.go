package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/heal-booking-service/internal/config"
)

const (
	driverName  = "postgres"
	pingTimeout = 5 * time.Second
)

// ErrConnect возвращается, когда не удалось установить соединение с БД
var ErrConnect = errors.New("postgres: failed to connect")

// OpenFunc открывает и проверяет пул соединений
type OpenFunc func(ctx context.Context) (*sql.DB, error)

// Connector лениво создает общий пул соединений.
// Пул создается один раз, при ошибке следующий вызов Get пробует снова.
type Connector struct {
	mu   sync.Mutex
	db   *sql.DB
	open OpenFunc
}

// NewConnector создает коннектор для указанной конфигурации
func NewConnector(cfg config.DatabaseConfig) *Connector {
	return NewConnectorWithOpener(func(ctx context.Context) (*sql.DB, error) {
		return Open(ctx, cfg)
	})
}

// NewConnectorWithOpener создает коннектор с собственной функцией открытия
func NewConnectorWithOpener(open OpenFunc) *Connector {
	return &Connector{open: open}
}

// Get возвращает пул, создавая его при первом обращении
func (c *Connector) Get(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := c.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	c.db = db
	return db, nil
}

// Ping проверяет доступность БД, при необходимости создавая пул
func (c *Connector) Ping(ctx context.Context) error {
	db, err := c.Get(ctx)
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// Close закрывает пул. Следующий Get создаст новый.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	return err
}

// Open открывает пул соединений lib/pq и проверяет его ping'ом
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
