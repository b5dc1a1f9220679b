//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/pizza-service/config"
)

func TestInitializeDatabase(t *testing.T) {
	t.Run("returns nil when database is disabled", func(t *testing.T) {
		components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

		assert.Nil(t, components)
	})

	t.Run("router initializes without database components", func(t *testing.T) {
		services := InitializeServices(config.Config{})
		routerComponents := InitializeRouter(services, nil, config.Config{
			Server: config.ServerConfig{RateLimit: 100, RateWindow: time.Minute},
		})

		assert.NotNil(t, routerComponents.Handler)
		assert.NotNil(t, routerComponents.HealthHandler)
		assert.Nil(t, routerComponents.Config.LoggingService)
	})
}
