package main

import (
	"context"
	"log"

	"dukicks/app"
	"dukicks/config"
	_ "dukicks/docs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title DuKicks Storefront API
// @version 1.0
// @description Catalog, search and session cart for the DuKicks sneaker store.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Setup(); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer config.SyncLogger()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	application, err := app.New(context.Background())
	if err != nil {
		config.Log.Fatal("failed to start application", zap.Error(err))
	}
	defer application.Close()

	port := ":" + config.AppConfig.Port
	config.Log.Info("server starting",
		zap.String("port", port),
		zap.String("env", config.AppConfig.AppEnv),
		zap.String("swagger", "http://localhost:"+config.AppConfig.Port+"/swagger/index.html"))

	if err := application.Router.Run(port); err != nil {
		config.Log.Fatal("server stopped", zap.Error(err))
	}
}
