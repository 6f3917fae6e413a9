package instance

import "github.com/angelmondragon/cart-backend/pkg/env"

// GetID returns the process instance identifier used in boot logs. Heroku style DYNO
// wins over HOSTNAME; local runs fall back to "local".
func GetID() string {
	if id := env.Get("DYNO", ""); id != "" {
		return id
	}
	return env.Get("HOSTNAME", "local")
}
