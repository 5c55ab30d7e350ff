package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/lumenhr/orgadmin/pkg/application"
	"github.com/lumenhr/orgadmin/pkg/configuration"
	"github.com/lumenhr/orgadmin/pkg/constants"
	"github.com/lumenhr/orgadmin/pkg/middleware"
	"github.com/lumenhr/orgadmin/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	allowedOrigins := strings.Split(options.Configuration.AllowedOrigins, ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	app.RegisterMiddleware(
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Cors(allowedOrigins...),
	)

	return server.NewHTTPServer(
		app,
		notFound(),
		methodNotAllowed(),
	), nil
}

func notFound() http.Handler {
	return jsonError(http.StatusNotFound, "NOT_FOUND", "resource not found")
}

func methodNotAllowed() http.Handler {
	return jsonError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}

func jsonError(status int, code, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":    code,
				"message": message,
			},
		})
	})
}
