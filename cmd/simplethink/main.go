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


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	simplethink "github.com/CalmEddy/SimpleThink-v3-sub002"
	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp"
	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp/mock"
	"github.com/CalmEddy/SimpleThink-v3-sub002/retag"
	"github.com/CalmEddy/SimpleThink-v3-sub002/retrieval"
	"github.com/CalmEddy/SimpleThink-v3-sub002/template"
	"github.com/CalmEddy/SimpleThink-v3-sub002/template/randomize"
	"github.com/urfave/cli/v2"
)

// demoCorpus seeds a small graph for kicking the tires without a
// language service.
var demoCorpus = []string{
	"The quick brown fox jumps over the lazy dog",
	"The quick red fox naps under the old oak",
	"A lazy dog sleeps through the warm afternoon",
	"New York Times reporters chase the big story",
	"Children play games in the quiet park",
	"The old dog watches the children play",
}

func main() {
	app := &cli.App{
		Name:  "simplethink",
		Usage: "Linguistic knowledge graph over phrases, words and chunks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest phrases from arguments, stdin, or the demo corpus",
				ArgsUsage: "[phrase...]",
				Action:    ingestCommand,
				Flags: append(databaseFlags(),
					&cli.BoolFlag{
						Name:  "demo",
						Usage: "Ingest the built-in demo corpus instead of reading input",
					},
				),
			},
			{
				Name:      "related",
				Usage:     "Surface phrases related to a query phrase",
				ArgsUsage: "<phrase>",
				Action:    relatedCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of related phrases to return",
						Value: retrieval.DefaultMaxResults,
					},
					&cli.Float64Flag{
						Name:  "min-overlap",
						Usage: "Minimum lemma overlap for a phrase to qualify",
					},
				),
			},
			{
				Name:   "chunks",
				Usage:  "List catalogued chunks ranked by usage, likes and recency",
				Action: chunksCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of chunks to list",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "pattern",
						Usage: "Only list chunks with this exact POS pattern",
					},
					&cli.StringFlag{
						Name:  "lemmas",
						Usage: "Only list chunks sharing these comma-separated lemmas",
					},
				),
			},
			{
				Name:      "template",
				Usage:     "Parse a template and preview randomization marks",
				ArgsUsage: "<template>",
				Action:    templateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "strategies",
						Usage: "YAML file describing the randomization pipeline",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Random seed for the preview (0 uses the clock)",
					},
				},
			},
			{
				Name:   "retag",
				Usage:  "Rerun POS analysis over every word in the graph",
				Action: retagCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of words to process in each batch",
						Value: 50,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N words",
						Value: 25,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed lookups",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to the database directory",
			Value:   "simplethink-data",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "Language service host URL for tagging and POS lookups",
		},
		&cli.StringFlag{
			Name:  "tagger-model",
			Usage: "Model name for phrase tagging",
		},
		&cli.StringFlag{
			Name:  "tester-model",
			Usage: "Model name for context-based POS lookups",
		},
		&cli.BoolFlag{
			Name:  "mock",
			Usage: "Use the built-in lexicon instead of a language service",
		},
	}
}

func openDatabase(c *cli.Context) (*simplethink.Database, error) {
	opts := []simplethink.DatabaseOption{}
	if c.Bool("mock") {
		opts = append(opts, simplethink.WithProvider(mock.NewProvider()))
	} else {
		configOpts := []nlp.ConfigOption{}
		if host := c.String("host"); host != "" {
			configOpts = append(configOpts, nlp.WithHost(host))
		}
		if model := c.String("tagger-model"); model != "" {
			configOpts = append(configOpts, nlp.WithTaggerModel(model))
		}
		if model := c.String("tester-model"); model != "" {
			configOpts = append(configOpts, nlp.WithTesterModel(model))
		}
		config := nlp.NewConfig(configOpts...)
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid language service configuration: %w", err)
		}
		opts = append(opts, simplethink.WithNLPConfig(config))
	}

	db, err := simplethink.NewDatabase(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	phrases := c.Args().Slice()
	if c.Bool("demo") {
		phrases = demoCorpus
	} else if len(phrases) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				phrases = append(phrases, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	if len(phrases) == 0 {
		return fmt.Errorf("nothing to ingest: pass phrases, pipe stdin, or use --demo")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	for _, phrase := range phrases {
		result, err := pipeline.IngestPhraseText(ctx, phrase)
		if err != nil {
			return fmt.Errorf("failed to ingest %q: %w", phrase, err)
		}
		fmt.Printf("ingested %q: %d words, %d chunks\n",
			result.Phrase.Text, len(result.Words), len(result.Chunks))
	}

	return db.SaveSnapshotNow()
}

func relatedCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query phrase is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	// The query becomes part of the graph; retrieval then runs off its
	// lemma set and chunk keys.
	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	result, err := pipeline.IngestPhraseText(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to ingest query: %w", err)
	}

	engine, err := db.NewEngine()
	if err != nil {
		return fmt.Errorf("failed to create retrieval engine: %w", err)
	}
	related, err := engine.SurfaceRelated(result.Phrase.Id, retrieval.Options{
		MaxResults: c.Int("max-results"),
		MinOverlap: c.Float64("min-overlap"),
	})
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	if len(related.RelatedPhrases) == 0 {
		fmt.Println("no related phrases")
	}
	for _, r := range related.RelatedPhrases {
		fmt.Printf("%.3f  %s  (overlap %.3f)\n", r.Score, r.Phrase.Text, r.Overlap)
	}
	if len(related.TopChunks) > 0 {
		fmt.Println("\ntop chunks:")
		for _, chunk := range related.TopChunks {
			fmt.Printf("%.3f  %s\n", chunk.Score, chunk.Key)
		}
	}

	return db.SaveSnapshotNow()
}

func chunksCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	catalog := db.Catalog()

	var keys []string
	switch {
	case c.String("pattern") != "":
		keys = catalog.ByPattern(c.String("pattern"))
	case c.String("lemmas") != "":
		lemmas := strings.Split(c.String("lemmas"), ",")
		for i := range lemmas {
			lemmas[i] = strings.TrimSpace(lemmas[i])
		}
		keys = catalog.ByLemmas(lemmas)
	default:
		keys = catalog.TopKeys(c.Int("limit"))
	}
	if limit := c.Int("limit"); len(keys) > limit {
		keys = keys[:limit]
	}

	if len(keys) == 0 {
		fmt.Println("no chunks catalogued")
		return nil
	}
	for _, key := range keys {
		stats, _ := catalog.Stats(key)
		fmt.Printf("%.3f  %-40s  uses=%d likes=%d\n",
			catalog.Score(key), key, stats.Uses, stats.Likes)
	}
	return nil
}

func templateCommand(c *cli.Context) error {
	text := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("a template is required")
	}

	tokens, err := template.ParseTemplateText(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	fmt.Printf("parsed: %s\n", renderTokens(tokens))
	if bindings := template.BuildBindings(tokens); bindings != nil {
		fmt.Println("bindings:")
		for id, binding := range bindings {
			if binding.Morph != "" {
				fmt.Printf("  %s = %s:%s\n", id, binding.POS, binding.Morph)
			} else {
				fmt.Printf("  %s = %s\n", id, binding.POS)
			}
		}
	}

	path := c.String("strategies")
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read strategies file: %w", err)
	}
	pipeline, err := randomize.LoadStrategies(data)
	if err != nil {
		return fmt.Errorf("failed to load strategies: %w", err)
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	fmt.Printf("preview: %s\n", renderTokens(pipeline.Apply(tokens, rng)))
	return nil
}

// renderTokens prints a parsed sequence back as template text, marking
// slots chosen for substitution with a trailing asterisk.
func renderTokens(tokens []template.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Kind {
		case template.TokenLiteral:
			parts = append(parts, tok.Text)
		case template.TokenSlot:
			slot := "[" + string(tok.POS)
			if tok.Morph != "" {
				slot += ":" + tok.Morph
			}
			slot += "]"
			if tok.Marked {
				slot += "*"
			}
			parts = append(parts, slot)
		case template.TokenSubtemplate:
			parts = append(parts, renderTokens(tok.Sub))
		}
	}
	return strings.Join(parts, " ")
}

func retagCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := retag.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	retagger, err := db.NewRetagger(config, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to create retagger: %w", err)
	}

	summary, err := retagger.Run(ctx, db.Graph())
	if err != nil {
		return fmt.Errorf("retagging failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "retagged %d words: %d widened, %d failed\n",
		summary.Total, summary.Widened, summary.Failed)

	return db.SaveSnapshotNow()
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
