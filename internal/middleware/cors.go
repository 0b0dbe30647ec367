package middleware

import (
	"github.com/rs/cors"

	"github.com/cours-de-latin/numerals/internal/config"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control headers allowed by cfg.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
