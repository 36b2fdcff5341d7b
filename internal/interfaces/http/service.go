package httpinterface

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/feesplit/feesplitd/internal/core/application/operator"
	"github.com/feesplit/feesplitd/internal/core/application/processor"
	"github.com/feesplit/feesplitd/internal/core/application/pubsub"
	"github.com/feesplit/feesplitd/internal/interfaces"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 10 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

// ServiceOpts groups the dependencies of both HTTP interfaces.
type ServiceOpts struct {
	// HookAddress is the listening address of the engine-facing interface.
	HookAddress string
	// OperatorAddress is the listening address of the operator interface.
	OperatorAddress string

	ProcessorSvc *processor.Service
	OperatorSvc  operator.Service
	PubSubSvc    *pubsub.Service
}

func (o ServiceOpts) validate() error {
	if o.HookAddress == "" {
		return fmt.Errorf("missing hook interface listening address")
	}
	if o.OperatorAddress == "" {
		return fmt.Errorf("missing operator interface listening address")
	}
	if o.ProcessorSvc == nil {
		return fmt.Errorf("missing processor service")
	}
	if o.OperatorSvc == nil {
		return fmt.Errorf("missing operator service")
	}
	if o.PubSubSvc == nil {
		return fmt.Errorf("missing pubsub service")
	}
	return nil
}

type service struct {
	opts  ServiceOpts
	wsHub *wsHub

	hookServer     *http.Server
	operatorServer *http.Server
}

// NewService returns the HTTP interfaces of the daemon: the engine-facing
// hook interface and the operator one, served on distinct ports.
func NewService(opts ServiceOpts) (interfaces.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid http service opts: %w", err)
	}

	svc := &service{opts: opts, wsHub: newWSHub()}

	// Every published event is mirrored to the websocket streams.
	opts.PubSubSvc.RegisterHandlerForEvent(func(_, message string) {
		svc.wsHub.broadcastMessage([]byte(message))
	})

	return svc, nil
}

func (s *service) Start() error {
	go s.wsHub.run()

	hookServer, err := s.startServer(
		"hook", s.opts.HookAddress, s.hookRouter(),
	)
	if err != nil {
		return err
	}
	operatorServer, err := s.startServer(
		"operator", s.opts.OperatorAddress, s.operatorRouter(),
	)
	if err != nil {
		return err
	}

	s.hookServer = hookServer
	s.operatorServer = operatorServer

	return nil
}

func (s *service) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// nolint
	s.hookServer.Shutdown(ctx)
	log.Debug("disabled hook interface")

	// nolint
	s.operatorServer.Shutdown(ctx)
	log.Debug("disabled operator interface")

	s.wsHub.stop()
}

func (s *service) hookRouter() http.Handler {
	handler := newHookHandler(s.opts.ProcessorSvc)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(metricsMiddleware("hook"))

	router.Post("/v1/hook/after-trade", handler.afterTrade)

	return router
}

func (s *service) operatorRouter() http.Handler {
	handler := newOperatorHandler(s.opts.OperatorSvc)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(metricsMiddleware("operator"))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", metricsHandler())

	router.Route("/v1", func(r chi.Router) {
		r.Get("/events/ws", s.wsHub.handleWS)

		r.Get("/info", handler.getInfo)
		r.Post("/developer/address", handler.updateDeveloperAddress)
		r.Get("/distributions", handler.listDistributions)
		r.Get("/distributions/stats", handler.getDistributionStats)
		r.Get("/balance", handler.getBalance)

		r.Post("/webhooks", handler.addWebhook)
		r.Delete("/webhooks/{id}", handler.removeWebhook)
		r.Get("/webhooks", handler.listWebhooks)
	})

	return router
}

func (s *service) startServer(
	name, addr string, handler http.Handler,
) (*http.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s interface address: %w", name, err)
	}

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	go func() {
		if err := server.Serve(lis); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Errorf("%s interface stopped serving", name)
		}
	}()

	return server, nil
}
