// Command token mints a member access token for local testing of the cart API. When
// redis is configured the matching access session is opened too, so the token passes
// CARTS_JWT_REQUIRE_SESSION checks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/cart-backend/pkg/auth"
	"github.com/angelmondragon/cart-backend/pkg/auth/session"
	"github.com/angelmondragon/cart-backend/pkg/config"
	"github.com/angelmondragon/cart-backend/pkg/logger"
	"github.com/angelmondragon/cart-backend/pkg/redis"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "token"})

	_ = godotenv.Load()

	memberID := flag.Int64("member", 0, "member id to embed in the token")
	flag.Parse()

	if *memberID <= 0 {
		fmt.Fprintln(os.Stderr, "missing -member (must be positive)")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	accessID := session.NewAccessID()
	token, err := auth.MintAccessToken(cfg.JWT, time.Now(), auth.AccessTokenPayload{
		MemberID: *memberID,
		JTI:      accessID,
	})
	if err != nil {
		logg.Error(ctx, "failed to mint token", err)
		os.Exit(1)
	}

	if cfg.Redis.Enabled() {
		if err := openSession(ctx, cfg, logg, accessID, *memberID); err != nil {
			logg.Error(ctx, "failed to open access session", err)
			os.Exit(1)
		}
	}

	fmt.Println(token)
}

func openSession(ctx context.Context, cfg *config.Config, logg *logger.Logger, accessID string, memberID int64) error {
	client, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		return err
	}
	defer client.Close()

	manager, err := session.NewManager(client, cfg.JWT)
	if err != nil {
		return err
	}
	return manager.Open(ctx, accessID, memberID)
}
