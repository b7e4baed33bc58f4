// Copyright 2025 CalmEddy
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package simplethink

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/CalmEddy/SimpleThink-v3-sub002/catalog"
	"github.com/CalmEddy/SimpleThink-v3-sub002/graph"
	"github.com/CalmEddy/SimpleThink-v3-sub002/ingestion"
	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp"
	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp/openai"
	"github.com/CalmEddy/SimpleThink-v3-sub002/persist"
	"github.com/CalmEddy/SimpleThink-v3-sub002/retag"
	"github.com/CalmEddy/SimpleThink-v3-sub002/retrieval"
)

// Database bundles the graph, the chunk catalog, the capability
// provider and the persistence stack behind one handle. Construction
// loads the last committed snapshot if one exists.
type Database struct {
	primary  *persist.BadgerStore
	fallback *persist.FileStore
	saver    *persist.Saver
	graph    *graph.Graph
	catalog  *catalog.Catalog
	provider nlp.Provider
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	nlpConfig *nlp.Config
	provider  nlp.Provider
	inMemory  bool
	debounce  time.Duration
}

// WithNLPConfig sets the configuration used to build the OpenAI
// capability provider.
func WithNLPConfig(config *nlp.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.nlpConfig = config
	}
}

// WithProvider injects a capability provider directly, bypassing the
// OpenAI client. Used by tests and embedders with their own tagging.
func WithProvider(provider nlp.Provider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithInMemoryStore keeps the primary store in memory. The legacy
// fallback still lives under the database path.
func WithInMemoryStore() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithSaveDebounce overrides the snapshot debounce window.
func WithSaveDebounce(d time.Duration) DatabaseOption {
	return func(o *databaseOptions) {
		o.debounce = d
	}
}

// NewDatabase opens the stores under filePath, builds the capability
// provider and loads the most recent snapshot into a fresh graph and
// catalog. A missing snapshot is not an error; the graph starts empty.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		nlpConfig: nlp.DefaultConfig(),
		debounce:  persist.DefaultDebounce,
	}
	for _, opt := range opts {
		opt(options)
	}

	var primary *persist.BadgerStore
	var err error
	if options.inMemory {
		primary, err = persist.NewMemoryStore()
	} else {
		primary, err = persist.OpenBadgerStore(filepath.Join(filePath, "badger"))
	}
	if err != nil {
		return nil, err
	}

	fallback, err := persist.NewFileStore(filepath.Join(filePath, "legacy"))
	if err != nil {
		primary.Close()
		return nil, err
	}

	saver, err := persist.NewSaver(primary, fallback, persist.WithDebounce(options.debounce))
	if err != nil {
		primary.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.nlpConfig)
		if err != nil {
			saver.Close()
			primary.Close()
			return nil, err
		}
	}

	g, err := graph.New()
	if err != nil {
		saver.Close()
		primary.Close()
		return nil, err
	}
	c, err := catalog.New()
	if err != nil {
		saver.Close()
		primary.Close()
		return nil, err
	}

	db := &Database{
		primary:  primary,
		fallback: fallback,
		saver:    saver,
		graph:    g,
		catalog:  c,
		provider: provider,
		logger:   slog.Default(),
	}

	if err := db.load(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// load restores the last committed snapshot, if any.
func (db *Database) load() error {
	payload, err := db.saver.Load()
	if errors.Is(err, persist.ErrNoSnapshot) {
		db.logger.Info("no snapshot found, starting empty")
		return nil
	}
	if err != nil {
		return err
	}

	snap, err := persist.DecodeSnapshot(payload)
	if err != nil {
		return err
	}
	if err := db.graph.RestoreSnapshot(snap); err != nil {
		return err
	}
	db.catalog.RestoreEntries(snap.Chunks)
	return nil
}

// Graph returns the knowledge graph.
func (db *Database) Graph() *graph.Graph {
	return db.graph
}

// Catalog returns the chunk catalog.
func (db *Database) Catalog() *catalog.Catalog {
	return db.catalog
}

// Provider returns the capability provider.
func (db *Database) Provider() nlp.Provider {
	return db.provider
}

// NewIngestionPipeline creates a pipeline over this database's graph,
// catalog and provider.
func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.graph, db.catalog, db.provider, opts...)
}

// NewEngine creates a retrieval engine over this database's graph and
// catalog.
func (db *Database) NewEngine() (*retrieval.Engine, error) {
	return retrieval.NewEngine(db.graph, db.catalog)
}

// NewRetagger creates a retagger over this database's capability
// provider.
func (db *Database) NewRetagger(config retag.Config, progress io.Writer) (*retag.Retagger, error) {
	return retag.NewRetagger(db.provider.ContextTester(), config, progress)
}

// snapshot assembles the graph and catalog state into one payload.
func (db *Database) snapshot() []byte {
	snap := db.graph.Snapshot()
	snap.Chunks = db.catalog.Entries()
	return persist.EncodeSnapshot(snap)
}

// SaveSnapshot schedules a debounced snapshot save. Rapid successive
// calls coalesce; the latest state wins.
func (db *Database) SaveSnapshot() error {
	return db.saver.Save(db.snapshot())
}

// SaveSnapshotNow commits a snapshot synchronously, cancelling any
// pending debounced save.
func (db *Database) SaveSnapshotNow() error {
	return db.saver.SaveNow(db.snapshot())
}

// Close flushes any pending save and releases all resources.
func (db *Database) Close() error {
	if err := db.saver.Close(); err != nil {
		db.logger.Error("error flushing pending snapshot", "err", err)
	}
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing capability provider", "err", err)
	}
	if err := db.fallback.Close(); err != nil {
		db.logger.Error("error closing fallback store", "err", err)
		return err
	}
	if err := db.primary.Close(); err != nil {
		db.logger.Error("error closing primary store", "err", err)
		return err
	}
	return nil
}
