package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/cart-backend/api/controllers"
	cartcontrollers "github.com/angelmondragon/cart-backend/api/controllers/cart"
	"github.com/angelmondragon/cart-backend/api/middleware"
	"github.com/angelmondragon/cart-backend/internal/cart"
	"github.com/angelmondragon/cart-backend/pkg/auth/session"
	"github.com/angelmondragon/cart-backend/pkg/config"
	"github.com/angelmondragon/cart-backend/pkg/logger"
	"github.com/angelmondragon/cart-backend/pkg/redis"
)

// NewRouter wires the HTTP surface. redisClient and sessionChecker may be nil, which
// disables idempotency replay, rate limiting, and session revocation checks.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	sessionChecker session.AccessSessionChecker,
	cartService cart.Service,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	readiness := map[string]controllers.Pinger{}
	if dbP != nil {
		readiness["db"] = dbP
	}

	var (
		idempotencyStore redis.IdempotencyStore
		rateStore        middleware.RateLimitStore
	)
	if redisClient != nil {
		readiness["redis"] = redisClient
		idempotencyStore = redisClient
		rateStore = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	mutationPolicy := middleware.NewRateLimitPolicy("carts", cfg.RateLimit.Window, cfg.RateLimit.MutationLimit)

	r.Route("/api/v1/carts", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
		r.Get("/", cartcontrollers.CartList(cartService, logg))

		mutations := r.With(
			middleware.MemberRateLimit(mutationPolicy, rateStore, logg),
			middleware.Idempotency(idempotencyStore, cfg.Idempotency.TTL, logg),
		)
		mutations.Post("/add", cartcontrollers.CartAdd(cartService, logg))
		mutations.Post("/update", cartcontrollers.CartUpdate(cartService, logg))
	})

	return r
}
