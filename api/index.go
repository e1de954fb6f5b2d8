package api

import (
	"context"
	"net/http"
	"sync"

	"dukicks/app"
	"dukicks/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		if err := config.Setup(); err != nil {
			initErr = err
			return
		}

		application, err := app.New(context.Background())
		if err != nil {
			config.Log.Error("failed to initialize application", zap.Error(err))
			initErr = err
			return
		}
		router = application.Router
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, `{"success":false,"message":"Service unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
