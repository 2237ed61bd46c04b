package server

import (
	"net/http"
)

type Config struct {
	Port              string
	disableMiddleware bool
	metricsHandler    http.Handler
}

// NewConfig builds the server config. A nil metricsHandler leaves /metrics
// unrouted.
func NewConfig(
	port string,
	disableMiddleware bool,
	metricsHandler http.Handler,
) Config {
	return Config{
		Port:              port,
		disableMiddleware: disableMiddleware,
		metricsHandler:    metricsHandler,
	}
}
