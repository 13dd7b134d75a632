/*
Copyright 2025 Mirantis IT.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Mirantis/pelagia-dashboard/pkg/backend"
	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
	dashconfig "github.com/Mirantis/pelagia-dashboard/pkg/config"
	"github.com/Mirantis/pelagia-dashboard/pkg/metrics"
	"github.com/Mirantis/pelagia-dashboard/pkg/multisite"
	"github.com/Mirantis/pelagia-dashboard/pkg/navigation"
	"github.com/Mirantis/pelagia-dashboard/pkg/shell"
)

var (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Server serves branded shell, navigation and multisite ui-api and metrics
type Server struct {
	log        zerolog.Logger
	config     dashconfig.DashboardConfig
	navigation *navigation.Navigation
	mux        *http.ServeMux
}

func New(log zerolog.Logger, config dashconfig.DashboardConfig) (*Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	dashboardMetrics := metrics.NewDashboardMetrics(registry)

	index, err := shell.LoadIndex(config.IndexPath)
	if err != nil {
		return nil, err
	}
	appShell := shell.NewShell(lcmcommon.ComponentLogger(log, "shell", config.LogLevel), config.BuildVariant)
	shellHandler, err := shell.NewHandler(appShell, index)
	if err != nil {
		return nil, err
	}

	navLog := lcmcommon.ComponentLogger(log, "navigation", config.LogLevel)
	backendClient := backend.NewClient(config.Backend.URL, config.Backend.Token, config.Backend.Insecure)
	sources := navigation.Sources{
		PwdDisplayed:    navigation.NewPublisher(),
		Telemetry:       navigation.NewPublisher(),
		Motd:            navigation.NewMotdSource(navLog, backendClient, config.NavigationParams.MotdPollInterval),
		CallHome:        navigation.NewPublisher(),
		StorageInsights: navigation.NewPublisher(),
	}
	nav := navigation.NewNavigation(navLog, dashboardMetrics,
		navigation.NewSummaryPoller(navLog, backendClient, config.NavigationParams.SummaryPollInterval),
		navigation.Registrations(config.BuildVariant, sources)...)

	multisiteClient := multisite.NewClient(lcmcommon.ComponentLogger(log, "multisite", config.LogLevel), backendClient, nil, dashboardMetrics)

	mux := http.NewServeMux()
	shellHandler.Register(mux)
	navigation.NewHandler(nav).Register(mux)
	multisite.NewHandler(multisiteClient).Register(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	mux.HandleFunc("GET /apiCheck", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("\"ok\"\n"))
	})

	return &Server{
		log:        log,
		config:     config,
		navigation: nav,
		mux:        mux,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) Navigation() *navigation.Navigation {
	return s.navigation
}

// Run listens on configured address and serves until context is done
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on '%s'", s.config.ListenAddress)
	}
	return s.Serve(ctx, listener)
}

// Serve starts navigation subscriptions and serves http on listener, all
// subscriptions are released and server is shut down when context is done
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if err := s.navigation.Start(ctx); err != nil {
		_ = listener.Close()
		return errors.Wrap(err, "failed to start navigation")
	}
	defer s.navigation.Stop()

	httpServer := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.log.Info().Msgf("serving dashboard on '%s' (build variant '%s')", listener.Addr().String(), s.config.BuildVariant)
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "dashboard server failed")
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		s.log.Info().Msg("shutting down dashboard server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
