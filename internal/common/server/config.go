package server

import (
	"net/http"

	"github.com/AlibekovAA/exercise-tracker/internal/common/constants"
)

type ServerConfig struct {
	Addr string
}

func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
		ReadTimeout:       constants.ServerReadTimeout,
		WriteTimeout:      constants.ServerWriteTimeout,
		IdleTimeout:       constants.ServerIdleTimeout,
	}
}

func DefaultServerConfig(port string) ServerConfig {
	return ServerConfig{Addr: ":" + port}
}
