package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/cart-backend/pkg/config"
	"github.com/angelmondragon/cart-backend/pkg/db"
	"github.com/angelmondragon/cart-backend/pkg/logger"
)

// MaybeRunDev applies the embedded migrations on boot when the app runs in dev mode
// with the auto-migrate flag enabled. The dialect follows the open connection so the
// local sqlite mode gets its own schema.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) (bool, error) {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return false, nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return false, fmt.Errorf("extracting sql.DB: %w", err)
	}

	src := Source{Dialect: client.Dialect()}
	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dialect": src.Dialect})
		logg.Info(ctx, "running goose migrations (dev auto-run)")
	}

	if err := Run(ctx, sqlDB, src, "up"); err != nil {
		return false, fmt.Errorf("running goose up: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "goose migrations completed")
	}
	return true, nil
}
