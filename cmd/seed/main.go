package main

import (
	"context"

	"github.com/toystore/backend/internal/domain/partner"
	"github.com/toystore/backend/internal/infrastructure/config"
	"github.com/toystore/backend/internal/infrastructure/logger"
	"github.com/toystore/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

type seedSupplier struct {
	name      string
	email     string
	specialty string
}

// sampleSuppliers covers one supplier per common toy category
var sampleSuppliers = []seedSupplier{
	{"Action Heroes Inc", "orders@actionheroes.com", "Action Figures"},
	{"Plush Paradise", "contact@plushparadise.com", "Plush"},
	{"Building Blocks Ltd", "sales@buildingblocks.com", "Building"},
	{"DollWorld Inc", "restock@dollworld.com", "Dolls"},
	{"Board Game Masters", "info@boardgamemasters.com", "Board Games"},
	{"Educational Toys Co", "orders@edutoys.com", "Educational"},
	{"Outdoor Play Experts", "contact@outdoorplay.com", "Outdoor"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	repo := persistence.NewGormSupplierRepository(db.DB)
	ctx := context.Background()

	created := 0
	for _, s := range sampleSuppliers {
		exists, err := repo.ExistsByName(ctx, s.name)
		if err != nil {
			log.Fatal("Failed to check supplier", zap.String("name", s.name), zap.Error(err))
		}
		if exists {
			log.Info("Supplier already exists, skipping", zap.String("name", s.name))
			continue
		}

		supplier, err := partner.NewSupplier(s.name, s.email, s.specialty)
		if err != nil {
			log.Fatal("Invalid seed supplier", zap.String("name", s.name), zap.Error(err))
		}
		if err := repo.Save(ctx, supplier); err != nil {
			log.Fatal("Failed to create supplier", zap.String("name", s.name), zap.Error(err))
		}

		log.Info("Created supplier",
			zap.String("name", s.name),
			zap.String("specialty", s.specialty),
		)
		created++
	}

	log.Info("Seeding completed",
		zap.Int("created", created),
		zap.Int("total", len(sampleSuppliers)),
	)
}
