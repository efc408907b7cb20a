package postgres

import (
	"context"
	"database/sql"

	"github.com/accolades/ads-dashboard-api/internal/config"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

// Conn é a conexão usada pelos repositórios e pelo healthcheck
type Conn interface {
	Queryer
	Ping(context.Context) error
	Close() error
}

type Connection struct {
	*sql.DB
}

var _ Conn = (*Connection)(nil)

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão com o banco")
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	conn := &Connection{DB: db}
	if err := conn.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return conn, nil
}

// Ping usa um timeout curto para não travar o healthcheck
func (c *Connection) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := c.DB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "banco de dados indisponível")
	}
	return nil
}
