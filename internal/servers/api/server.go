package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/okatiev/banking_api/internal/config"
	"github.com/okatiev/banking_api/internal/logging"
)

type Server struct {
	cfg *config.Config
	srv *http.Server
}

func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.cfg.APIServerAddress)
	if err != nil {
		return err
	}

	go s.srv.Serve(lis)

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func NewServer(h *Handler, lc fx.Lifecycle, cfg *config.Config, lg *logging.ZapLogger) *Server {
	srv := &Server{
		cfg: cfg,
		srv: &http.Server{Handler: requestLogger(lg, h.Router())},
	}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				lg.InfoCtx(ctx, "start banking api server", zap.Any("config", srv.cfg))

				return srv.Start()
			},
			OnStop: func(ctx context.Context) error {
				return srv.Stop(ctx)
			},
		},
	)

	return srv
}

func requestLogger(lg *logging.ZapLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		lg.DebugCtx(
			r.Context(),
			"request processed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
