package app

import (
	"context"
	"fmt"

	"dukicks/config"
	"dukicks/middleware"
	"dukicks/repositories"
	"dukicks/routes"
	"dukicks/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Router  *gin.Engine
	Catalog *services.Catalog
	Carts   *services.CartService
}

// New loads the catalog, picks the cart store and builds the router.
// Callers own config and logger setup and must call Close when done.
func New(ctx context.Context) (*App, error) {
	source, err := productSource(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := services.LoadCatalog(ctx, source)
	if err != nil {
		return nil, err
	}
	config.Log.Info("catalog loaded",
		zap.String("source", config.AppConfig.CatalogSource),
		zap.Int("products", catalog.Len()))

	carts := services.NewCartService(cartRepository(ctx), catalog, config.Log.Named("cart"))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, catalog, carts)

	return &App{Router: router, Catalog: catalog, Carts: carts}, nil
}

func (a *App) Close() {
	config.CloseRedis()
	config.CloseDB()
}

func productSource(ctx context.Context) (repositories.ProductSource, error) {
	switch config.AppConfig.CatalogSource {
	case config.CatalogStatic, "":
		return repositories.NewStaticProductRepository(), nil
	case config.CatalogPostgres:
		if err := config.ConnectDB(ctx); err != nil {
			return nil, err
		}
		return repositories.NewPostgresProductRepository(config.DB), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", config.AppConfig.CatalogSource)
	}
}

func cartRepository(ctx context.Context) repositories.CartRepository {
	config.InitRedis(ctx)
	if config.RedisClient == nil {
		config.Log.Warn("carts are kept in memory and lost on restart")
		return repositories.NewMemoryCartRepository()
	}
	return repositories.NewRedisCartRepository(config.RedisClient, config.AppConfig.CartTTL)
}
