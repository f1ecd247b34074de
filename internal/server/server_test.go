// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-cat-api/internal/config"
	"github.com/MKhiriev/go-cat-api/internal/handler"
	myGRPC "github.com/MKhiriev/go-cat-api/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-cat-api/internal/handler/http"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/mock"
	"github.com/MKhiriev/go-cat-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const loopback = "127.0.0.1:0"

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	ctrl := gomock.NewController(t)

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0-test").AnyTimes()

	services := &service.Services{AppInfoService: appInfo}
	h := &handler.Handlers{}
	if cfg.HTTPAddress != "" {
		h.HTTP = myHTTP.NewHandler(services, cfg, logger.Nop())
	}
	if cfg.GRPCAddress != "" {
		h.GRPC = myGRPC.NewHandler(logger.Nop())
	}
	return h
}

// startServer runs s in the background and returns a function that stops it
// and waits for run to return.
func startServer(t *testing.T, s *server) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop within timeout after context cancel")
		}
	}
}

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_BadAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:99999"}

	_, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.Error(t, err)
}

func TestNewServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", loopback)
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: loopback, GRPCAddress: busy.Addr().String()}

	_, err = newServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.Error(t, err)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	require.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_ServesHTTPUntilCanceled(t *testing.T) {
	cfg := config.Server{HTTPAddress: loopback}
	s, err := newServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	stop := startServer(t, s)
	url := "http://" + s.httpServer.addr() + "/api/version"

	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.0.0-test", string(body))

	stop()

	_, err = http.Get(url)
	assert.Error(t, err)
}

func TestRun_GRPCHealthFlipsOnShutdown(t *testing.T) {
	cfg := config.Server{GRPCAddress: loopback}
	handlers := newTestHandlers(t, cfg)
	s, err := newServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	stop := startServer(t, s)

	conn, err := grpc.NewClient(s.gRPCServer.addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	stop()

	_, err = healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{}, grpc.WaitForReady(false))
	assert.Error(t, err)
}
