package middleware

import (
	"net/http"
	"slices"

	"dukicks/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func AllowedOrigins() []string {
	allowedOrigins := []string{
		"http://localhost:5173",
		"http://localhost:3000",
	}

	if origin := config.AppConfig.OriginURL; origin != "" {
		allowedOrigins = append(allowedOrigins, origin)
	}
	return allowedOrigins
}

// OriginAllowed is the websocket counterpart of the CORS policy. Requests
// without an Origin header come from non-browser clients and pass.
func OriginAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || slices.Contains(AllowedOrigins(), origin)
}

func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	})
}
