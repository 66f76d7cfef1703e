package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrmohdriyas/digital-wellness/internal"
)

// PostgresStorage keeps submission documents as JSONB rows in a single
// wellness_documents table, with the target collection as a plain column.
type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

// --- CollectionLister ---
func (p *PostgresStorage) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := p.pool.Query(ctx, `SELECT DISTINCT collection_name FROM wellness_documents ORDER BY collection_name`)
	if err != nil {
		p.logger.Errorf("failed to query collection names: %v", err)
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			p.logger.Errorf("failed to scan collection name: %v", err)
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return filterReserved(names), nil
}

// --- DocumentInserter ---
func (p *PostgresStorage) InsertDocument(ctx context.Context, collection string, doc *internal.SubmissionDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `INSERT INTO wellness_documents (collection_name, body, created_at) VALUES ($1, $2, $3)`,
		collection, body, time.Now())
	if err != nil {
		p.logger.Errorf("failed to insert document into %s: %v", collection, err)
		return err
	}
	return nil
}

func (p *PostgresStorage) Close() {
	p.pool.Close()
}

// --- Compile-time assertions ---
var _ CollectionLister = (*PostgresStorage)(nil)
var _ DocumentInserter = (*PostgresStorage)(nil)
