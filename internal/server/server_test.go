package server

import (
	"testing"
	"time"

	"github.com/mpolacek/ufo-sightings/internal/config"
	handler "github.com/mpolacek/ufo-sightings/internal/handler/http"
	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	h := handler.NewHandler(&service.Services{}, logger.Nop())

	srv, err := NewServer(h, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoAddressConfigured)
	assert.Nil(t, srv)
}

func TestNewServer_Success(t *testing.T) {
	h := handler.NewHandler(&service.Services{}, logger.Nop())

	srv, err := NewServer(h, config.Server{Address: ":0", RequestTimeout: 30 * time.Second}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)

	// Shutdown of a server that never started must not hang or panic.
	srv.Shutdown()
}
