package network

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	logging "github.com/inconshreveable/log15"
	"golang.org/x/net/http2"

	"boscoin.io/votebank/lib/errors"
)

const (
	UrlPathPrefixAPI     = "/api/v1"
	UrlPathPrefixMetric  = "/metrics"
	UrlPathPrefixJSONRPC = "/jsonrpc"
)

// HTTP2Server serves the api over http2; plain http when no tls files are
// given.
type HTTP2Server struct {
	sync.RWMutex

	config  HTTP2ServerConfig
	server  *http.Server
	router  *mux.Router
	log     logging.Logger
	running bool
}

func NewHTTP2Server(config HTTP2ServerConfig, verbose bool) *HTTP2Server {
	router := mux.NewRouter()
	server := &http.Server{
		Addr:              config.Addr,
		Handler:           router,
		ReadTimeout:       config.ReadTimeout,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
		WriteTimeout:      config.WriteTimeout,
	}
	server.SetKeepAlivesEnabled(true)

	l := log.New(logging.Ctx{"endpoint": config.Endpoint.String()})
	http2.VerboseLogs = verbose
	http2.ConfigureServer(
		server,
		&http2.Server{
			IdleTimeout: config.IdleTimeout,
		},
	)
	server.ErrorLog = NewHTTP2ErrorLog15Writer(l)

	return &HTTP2Server{
		config: config,
		server: server,
		router: router,
		log:    l,
	}
}

func (s *HTTP2Server) Config() HTTP2ServerConfig {
	return s.config
}

func (s *HTTP2Server) Router() *mux.Router {
	return s.router
}

func (s *HTTP2Server) IsRunning() bool {
	s.RLock()
	defer s.RUnlock()

	return s.running
}

// AddHandler registers handler under `pattern`; returned route can be
// narrowed further with `Methods` and friends.
func (s *HTTP2Server) AddHandler(pattern string, handler http.HandlerFunc) *mux.Route {
	return s.router.HandleFunc(pattern, handler)
}

func (s *HTTP2Server) AddMiddleware(mws ...mux.MiddlewareFunc) {
	s.router.Use(mws...)
}

// Start blocks until the server is stopped. A running server can not be
// started again.
func (s *HTTP2Server) Start() (err error) {
	s.Lock()
	if s.running {
		s.Unlock()
		return errors.ServerAlreadyRunning
	}
	s.running = true
	s.server.Handler = HTTP2Log15Handler{log: s.log, handler: s.router}
	s.Unlock()

	s.log.Info("starting http2 server", "config", s.config)

	if s.config.IsHTTPS() {
		err = s.server.ListenAndServeTLS(s.config.TLSCertFile, s.config.TLSKeyFile)
	} else {
		err = s.server.ListenAndServe()
	}

	s.Lock()
	s.running = false
	s.Unlock()

	if err == http.ErrServerClosed {
		return nil
	}

	return
}

func (s *HTTP2Server) Stop() error {
	s.log.Info("stopping http2 server")

	return s.server.Shutdown(context.Background())
}
