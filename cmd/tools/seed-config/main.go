// cmd/tools/seed-config/main.go

// seed-config installs the default FCC scoping configuration into Postgres.
// Existing documents are left alone unless -force is given.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/config"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/database"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/logger"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/seed"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/store"
)

func main() {
	force := flag.Bool("force", false, "overwrite documents that already exist")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, "console")
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres init failed", zap.Error(err))
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := pg.Ping(ctx); err != nil {
		zapLog.Fatal("postgres unreachable", zap.Error(err))
	}

	configs := store.NewConfigStore(pg, log)
	if err := configs.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("schema setup failed", zap.Error(err))
	}
	if err := configs.Load(ctx); err != nil {
		zapLog.Fatal("configuration load failed", zap.Error(err))
	}

	// Matrix goes last: its category and role keys are validated against
	// the template and catalog already in the store.
	documents := []struct {
		name string
		doc  interface{}
	}{
		{store.DocTaxonomy, seed.Taxonomy()},
		{store.DocTemplate, seed.Template()},
		{store.DocTiers, seed.Tiers()},
		{store.DocRoles, seed.Roles()},
		{store.DocMatrix, seed.Matrix()},
	}

	for _, entry := range documents {
		name, doc := entry.name, entry.doc
		if !*force {
			if _, err := configs.GetDocument(ctx, name); err == nil {
				zapLog.Info("document exists, skipping", zap.String("document", name))
				continue
			} else if !errors.IsCode(err, errors.CodeNotFound) {
				zapLog.Fatal("document lookup failed", zap.String("document", name), zap.Error(err))
			}
		}

		body, err := json.Marshal(doc)
		if err != nil {
			zapLog.Fatal("document marshal failed", zap.String("document", name), zap.Error(err))
		}
		installed, err := configs.PutDocument(ctx, name, body)
		if err != nil {
			zapLog.Fatal("document install failed", zap.String("document", name), zap.Error(err))
		}
		zapLog.Info("document installed",
			zap.String("document", name),
			zap.Int64("version", installed.Version),
		)
	}

	zapLog.Info("seed complete")
}
