package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"shuttle/config"
	deliverymw "shuttle/internal/delivery/http/middleware"
	"shuttle/internal/delivery/http/router"
	"shuttle/internal/delivery/http/router/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewServerAppliesConfiguredTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 3000
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.Timeouts.ReadTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 60 * time.Second

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)

	delivery, err := NewServer(HTTPParams{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    logger,
		RouterParams: router.RouterParams{
			AccountHandler: handler.NewAccountHandler(nil, logger),
			PageHandler:    handler.NewPageHandler(),
			AuthMiddleware: deliverymw.NewAuthMiddleware(nil),
		},
		ErrorMiddleware:     deliverymw.NewErrorMiddleware(logger),
		RequestIDMiddleware: deliverymw.NewRequestIDMiddleware(logger),
	})
	require.NoError(t, err)

	srv, ok := delivery.(*httpServer)
	require.True(t, ok)

	assert.Equal(t, 10*time.Second, srv.server.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.server.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, srv.server.Server.IdleTimeout)
}
