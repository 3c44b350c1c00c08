package config

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB is the handle every repository is built from. It is assigned once by
// Connect and never reassigned.
var DB *mongo.Database

// Provider opens one client on first use and hands the same database to
// every later caller. A failed first attempt is memoized too; there is no
// retry.
type Provider struct {
	once   sync.Once
	client *mongo.Client
	db     *mongo.Database
	err    error
}

func (p *Provider) Connect(ctx context.Context, s MongoSettings) (*mongo.Database, error) {
	p.once.Do(func() {
		p.client, p.db, p.err = open(ctx, s)
	})
	return p.db, p.err
}

func (p *Provider) Disconnect(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Disconnect(ctx)
}

func open(ctx context.Context, s MongoSettings) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().ApplyURI(s.URI)
	if s.Timeout > 0 {
		opts.SetServerSelectionTimeout(s.Timeout)
		opts.SetConnectTimeout(s.Timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	name := s.Database
	if name == "" {
		name = DefaultDatabase
	}
	return client, client.Database(name), nil
}

var defaultProvider Provider

func Connect(ctx context.Context, s MongoSettings) error {
	db, err := defaultProvider.Connect(ctx, s)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

func Disconnect(ctx context.Context) error {
	return defaultProvider.Disconnect(ctx)
}
