package bootstrap

import (
	httpapi "github.com/GoSim-25-26J-441/clan-api/internal/api/http"
	"github.com/GoSim-25-26J-441/clan-api/internal/api/http/middleware"
	clanhttp "github.com/GoSim-25-26J-441/clan-api/internal/clans/http"
	"github.com/GoSim-25-26J-441/clan-api/internal/clans/repository"
	"github.com/GoSim-25-26J-441/clan-api/internal/storage/postgres"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	DB             postgres.Provider
	Logger         *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Logger))

	// Root and health probes answer any origin; the allowlist only guards /clans.
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	clanRepo := repository.NewClanRepository(dep.DB)
	clanhttp.New(clanRepo, dep.Logger).Register(r)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", middleware.HeaderRequestID}
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
