package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the indexes every repository relies on. The unique
// indexes are what actually closes the check-then-write race on usernames,
// emails, book titles and category names.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	repos := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		NewUserRepository(db),
		NewBookRepository(db),
		NewCategoryRepository(db),
		NewOrderRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

// duplicateKeyField extracts the offending field from a Mongo duplicate-key
// error. The server names single-field unique indexes "<field>_1", so the
// field is read from the index name token rather than scanned anywhere in the
// message: a colliding value that happens to contain another field's name
// (say the email "username@x.com") must not shift the blame. Returns "" when
// the field cannot be determined.
func duplicateKeyField(err error, fields ...string) string {
	if !mongo.IsDuplicateKeyError(err) {
		return ""
	}

	const marker = "index: "
	msg := err.Error()
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	name := msg[i+len(marker):]
	if end := strings.IndexByte(name, ' '); end >= 0 {
		name = name[:end]
	}

	for _, f := range fields {
		if name == f+"_1" {
			return f
		}
	}
	return ""
}
