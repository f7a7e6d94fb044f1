package runner

import (
	"io"
	"net/http"

	ghandlers "github.com/gorilla/handlers"
	logging "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/ledger"
	"boscoin.io/votebank/lib/network"
	"boscoin.io/votebank/lib/network/api"
	"boscoin.io/votebank/lib/network/httpcache"
	"boscoin.io/votebank/lib/version"
)

// NodeRunner serves the ledger over the http2 server.
type NodeRunner struct {
	ledger    *ledger.Ledger
	server    *network.HTTP2Server
	conf      common.Config
	cache     httpcache.Wrapper
	log       logging.Logger
	accessLog io.Writer
	jsonrpc   bool
	ready     bool
}

type Option func(*NodeRunner)

// WithAccessLog writes apache combined access logs of the api to `w`.
func WithAccessLog(w io.Writer) Option {
	return func(nr *NodeRunner) {
		nr.accessLog = w
	}
}

// WithJSONRPC mounts the storage debugging service on `/jsonrpc`.
func WithJSONRPC(enabled bool) Option {
	return func(nr *NodeRunner) {
		nr.jsonrpc = enabled
	}
}

func NewNodeRunner(l *ledger.Ledger, server *network.HTTP2Server, opts ...Option) (*NodeRunner, error) {
	conf := l.Config()

	cache, err := httpcache.NewWrapper(conf)
	if err != nil {
		return nil, err
	}

	nr := &NodeRunner{
		ledger: l,
		server: server,
		conf:   conf,
		cache:  cache,
		log:    log.New(logging.Ctx{"endpoint": server.Config().Endpoint.Host}),
	}
	for _, opt := range opts {
		opt(nr)
	}

	return nr, nil
}

func (nr *NodeRunner) Ledger() *ledger.Ledger {
	return nr.ledger
}

// Handler is the router with every middleware and handler of the node.
func (nr *NodeRunner) Handler() http.Handler {
	return nr.server.Router()
}

func (nr *NodeRunner) NodeInfo() api.NodeInfo {
	return api.NodeInfo{
		NetworkID: string(nr.conf.NetworkID),
		Variant:   nr.ledger.Program().Variant().String(),
		Version:   version.Info(),
		Policy: api.NodePolicy{
			OperationsLimit:  nr.conf.OpsLimit,
			RateLimitRuleAPI: nr.conf.RateLimitAPI,
			HTTPCacheAdapter: nr.conf.HTTPCacheAdapter,
		},
	}
}

// Ready registers the middlewares and handlers. It is called by Start and
// can be called alone to serve the router elsewhere.
func (nr *NodeRunner) Ready() error {
	if nr.ready {
		return nil
	}

	router := nr.server.Router()

	// base router's middlewares impact all sub routers.
	nr.server.AddMiddleware(network.RecoverMiddleware(false), network.MetricsMiddleware)
	if nr.accessLog != nil {
		nr.server.AddMiddleware(func(next http.Handler) http.Handler {
			return ghandlers.CombinedLoggingHandler(nr.accessLog, next)
		})
	}

	apiRouter := router.PathPrefix(network.UrlPathPrefixAPI).Subrouter()

	rateLimit, err := network.RateLimitMiddleware(nr.conf.RateLimitAPI)
	if err != nil {
		nr.log.Error("`network.RateLimitMiddleware` has an error", "err", err)
		return err
	}
	apiRouter.Use(rateLimit)

	{ // CORS
		allowedOrigins := ghandlers.AllowedOrigins([]string{"*"})
		allowedMethods := ghandlers.AllowedMethods([]string{"GET", "POST"})
		allowedHeaders := ghandlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "Cache-Control", "Access-Control"})

		apiRouter.Use(ghandlers.CORS(allowedOrigins, allowedMethods, allowedHeaders))
	}

	// `urlPrefix` is empty; the sub router already carries it.
	apiHandler := api.NewNetworkHandlerAPI(nr.ledger, "", nr.cache, nr.NodeInfo())

	apiRouter.HandleFunc(
		apiHandler.HandlerURLPattern(api.NodeInfoHandlerPattern),
		apiHandler.GetNodeInfoHandler,
	).Methods("GET", "OPTIONS")
	apiRouter.HandleFunc(
		apiHandler.HandlerURLPattern(api.GetVoteBankHandlerPattern),
		apiHandler.GetVoteBankHandler,
	).Methods("GET", "OPTIONS")
	apiRouter.HandleFunc(
		apiHandler.HandlerURLPattern(api.GetTransactionByHashHandlerPattern),
		apiHandler.GetTransactionByHashHandler,
	).Methods("GET", "OPTIONS")
	apiRouter.HandleFunc(
		apiHandler.HandlerURLPattern(api.GetTransactionsHandlerPattern),
		apiHandler.GetTransactionsHandler,
	).Methods("GET", "OPTIONS")
	apiRouter.HandleFunc(
		apiHandler.HandlerURLPattern(api.PostTransactionPattern),
		apiHandler.PostTransactionHandler,
	).Methods("POST")

	router.Handle(network.UrlPathPrefixMetric, promhttp.Handler()).Methods("GET")

	if nr.jsonrpc {
		router.Handle(network.UrlPathPrefixJSONRPC, NewJSONRPCHandler(nr.ledger.Storage())).Methods("POST", "OPTIONS")
		nr.log.Debug("jsonrpc enabled", "path", network.UrlPathPrefixJSONRPC)
	}

	nr.ready = true

	return nil
}

// Start blocks until the server stops.
func (nr *NodeRunner) Start() error {
	if err := nr.Ready(); err != nil {
		return err
	}

	nr.log.Info("node runner started", "node-info", nr.NodeInfo())

	return nr.server.Start()
}

// Stop shuts the server down if it runs and closes the storage.
func (nr *NodeRunner) Stop() {
	if nr.server.IsRunning() {
		if err := nr.server.Stop(); err != nil {
			nr.log.Error("failed to stop server", "error", err)
		}
	}
	if err := nr.ledger.Storage().Close(); err != nil {
		nr.log.Error("failed to close storage", "error", err)
	}

	nr.log.Info("node runner stopped")
}
