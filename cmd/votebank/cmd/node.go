package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	logging "github.com/inconshreveable/log15"
	"github.com/oklog/run"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cmdcommon "boscoin.io/votebank/cmd/votebank/common"
	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/ledger"
	"boscoin.io/votebank/lib/metrics"
	"boscoin.io/votebank/lib/network"
	"boscoin.io/votebank/lib/network/api"
	"boscoin.io/votebank/lib/network/httpcache"
	"boscoin.io/votebank/lib/node/runner"
	"boscoin.io/votebank/lib/storage"
	"boscoin.io/votebank/lib/version"
	"boscoin.io/votebank/lib/votebank"
)

const defaultNetwork string = "http"
const defaultPort int = 12345
const defaultHost string = "0.0.0.0"
const defaultLogLevel logging.Lvl = logging.LvlInfo

var (
	flagNetworkID         string = common.GetENVValue("VOTEBANK_NETWORK_ID", "")
	flagLogLevel          string = common.GetENVValue("VOTEBANK_LOG_LEVEL", defaultLogLevel.String())
	flagLogOutput         string = common.GetENVValue("VOTEBANK_LOG_OUTPUT", "")
	flagAccessLog         string = common.GetENVValue("VOTEBANK_ACCESS_LOG", "")
	flagVerbose           bool   = common.GetENVValue("VOTEBANK_VERBOSE", "0") == "1"
	flagBind              string = common.GetENVValue("VOTEBANK_BIND", fmt.Sprintf("%s://%s:%d", defaultNetwork, defaultHost, defaultPort))
	flagStorageConfig     string
	flagTLSCertFile       string = common.GetENVValue("VOTEBANK_TLS_CERT", "")
	flagTLSKeyFile        string = common.GetENVValue("VOTEBANK_TLS_KEY", "")
	flagVariant           string = common.GetENVValue("VOTEBANK_VARIANT", string(votebank.VariantVoterList))
	flagOpsLimit          string = common.GetENVValue("VOTEBANK_OPERATIONS_LIMIT", strconv.Itoa(common.DefaultOperationsInTransactionLimit))
	flagRateLimitAPI      string = common.GetENVValue("VOTEBANK_RATE_LIMIT_API", common.DefaultRateLimitAPI)
	flagHTTPCacheAdapter  string = common.GetENVValue("VOTEBANK_HTTP_CACHE_ADAPTER", "")
	flagHTTPCachePoolSize string = common.GetENVValue("VOTEBANK_HTTP_CACHE_POOL_SIZE", strconv.Itoa(common.DefaultHTTPCachePoolSize))
	flagHTTPCacheRedis    cmdcommon.ListFlags
	flagJSONRPC           bool = common.GetENVValue("VOTEBANK_JSONRPC", "0") == "1"
)

var (
	nodeCmd *cobra.Command

	bindEndpoint  *url.URL
	storageConfig *storage.Config
	variant       votebank.Variant
	conf          common.Config
	logLevel      logging.Lvl
	logHandler    logging.Handler
	log           logging.Logger = logging.New("module", "main")
)

func init() {
	nodeCmd = &cobra.Command{
		Use:   "node",
		Short: "Run votebank node",
		Run: func(c *cobra.Command, args []string) {
			parseFlagsNode()

			runNode()
		},
	}

	flagStorageConfig = common.GetENVValue("VOTEBANK_STORAGE", defaultStorageConfig())

	if s := common.GetENVValue("VOTEBANK_HTTP_CACHE_REDIS_ADDRS", ""); len(s) > 0 {
		flagHTTPCacheRedis = strings.Split(s, ",")
	}

	nodeCmd.Flags().StringVar(&flagNetworkID, "network-id", flagNetworkID, "network id")
	nodeCmd.Flags().StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")
	nodeCmd.Flags().StringVar(&flagLogOutput, "log-output", flagLogOutput, "set log output file")
	nodeCmd.Flags().StringVar(&flagAccessLog, "access-log", flagAccessLog, "set access log file of api")
	nodeCmd.Flags().BoolVar(&flagVerbose, "verbose", flagVerbose, "verbose")
	nodeCmd.Flags().StringVar(&flagBind, "bind", flagBind, "bind uri to listen on ('http://0.0.0.0:12345')")
	nodeCmd.Flags().StringVar(&flagStorageConfig, "storage", flagStorageConfig, "storage uri")
	nodeCmd.Flags().StringVar(&flagTLSCertFile, "tls-cert", flagTLSCertFile, "tls certificate file, needed for https")
	nodeCmd.Flags().StringVar(&flagTLSKeyFile, "tls-key", flagTLSKeyFile, "tls key file, needed for https")
	nodeCmd.Flags().StringVar(&flagVariant, "variant", flagVariant, "vote bank variant, {voter-list, open}")
	nodeCmd.Flags().StringVar(&flagOpsLimit, "operations-limit", flagOpsLimit, "operations limit in a transaction")
	nodeCmd.Flags().StringVar(&flagRateLimitAPI, "rate-limit-api", flagRateLimitAPI, "rate limit for api per client ip, '<limit>-<S|M|H>'; empty disables it")
	nodeCmd.Flags().StringVar(&flagHTTPCacheAdapter, "http-cache-adapter", flagHTTPCacheAdapter, "http cache adapter, {'', memory, redis}")
	nodeCmd.Flags().StringVar(&flagHTTPCachePoolSize, "http-cache-pool-size", flagHTTPCachePoolSize, "http cache pool size of memory adapter")
	nodeCmd.Flags().Var(&flagHTTPCacheRedis, "http-cache-redis-addrs", "redis address of http cache, can be given multiple times")
	nodeCmd.Flags().BoolVar(&flagJSONRPC, "jsonrpc", flagJSONRPC, "serve storage debugging json-rpc on "+network.UrlPathPrefixJSONRPC)

	rootCmd.AddCommand(nodeCmd)
}

func defaultStorageConfig() string {
	currentDirectory, err := os.Getwd()
	if err == nil {
		currentDirectory, err = filepath.Abs(currentDirectory)
	}
	if err != nil {
		currentDirectory = "."
	}

	return fmt.Sprintf("file://%s/db", currentDirectory)
}

// parseBind adds the tls files to the https endpoint.
func parseBind(bind, tlsCertFile, tlsKeyFile string) (*url.URL, error) {
	endpoint, err := url.Parse(bind)
	if err != nil {
		return nil, errors.Wrap(err, "--bind")
	}

	if strings.ToLower(endpoint.Scheme) == "https" {
		if _, err := os.Stat(tlsCertFile); err != nil {
			return nil, errors.Wrap(err, "--tls-cert")
		}
		if _, err := os.Stat(tlsKeyFile); err != nil {
			return nil, errors.Wrap(err, "--tls-key")
		}

		queries := endpoint.Query()
		queries.Set("TLSCertFile", tlsCertFile)
		queries.Set("TLSKeyFile", tlsKeyFile)
		endpoint.RawQuery = queries.Encode()
	}

	queries := endpoint.Query()
	if len(queries.Get("IdleTimeout")) < 1 {
		queries.Set("IdleTimeout", "3s")
		endpoint.RawQuery = queries.Encode()
	}

	if _, err := network.NewHTTP2ServerConfigFromEndpoint(endpoint); err != nil {
		return nil, err
	}

	return endpoint, nil
}

// parseConfig builds the node config out of the flag values.
func parseConfig(networkID, opsLimit, rateLimitAPI, cacheAdapter, cachePoolSize string, redisAddrs []string) (common.Config, string, error) {
	if len(networkID) < 1 {
		return common.Config{}, "--network-id", errors.New("--network-id must be given")
	}

	c := common.NewConfig([]byte(networkID))

	var err error
	if c.OpsLimit, err = strconv.Atoi(opsLimit); err != nil || c.OpsLimit < 1 {
		return c, "--operations-limit", fmt.Errorf("must be a positive number: %q", opsLimit)
	}

	if _, err := network.RateLimitMiddleware(rateLimitAPI); err != nil {
		return c, "--rate-limit-api", err
	}
	c.RateLimitAPI = rateLimitAPI

	c.HTTPCacheAdapter = cacheAdapter
	if c.HTTPCachePoolSize, err = strconv.Atoi(cachePoolSize); err != nil || c.HTTPCachePoolSize < 1 {
		return c, "--http-cache-pool-size", fmt.Errorf("must be a positive number: %q", cachePoolSize)
	}
	c.HTTPCacheRedisAddrs = redisAddrs

	if cacheAdapter != httpcache.AdapterNone {
		if _, err := httpcache.NewAdapter(c); err != nil {
			return c, "--http-cache-adapter", err
		}
	}

	return c, "", nil
}

func parseFlagsNode() {
	var err error

	if bindEndpoint, err = parseBind(flagBind, flagTLSCertFile, flagTLSKeyFile); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--bind", err)
	}

	var flagName string
	if conf, flagName, err = parseConfig(
		flagNetworkID,
		flagOpsLimit,
		flagRateLimitAPI,
		flagHTTPCacheAdapter,
		flagHTTPCachePoolSize,
		flagHTTPCacheRedis,
	); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, flagName, err)
	}

	if variant, err = votebank.ParseVariant(flagVariant); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--variant", err)
	}

	if storageConfig, err = storage.NewConfigFromString(flagStorageConfig); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--storage", err)
	}

	if logLevel, err = logging.LvlFromString(flagLogLevel); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--log-level", err)
	}

	if logHandler, err = common.NewLogHandler(flagLogOutput); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--log-output", err)
	}
	if len(flagLogOutput) < 1 {
		flagLogOutput = "<stdout>"
	}

	setLogging(logLevel, logHandler)

	log.Info("Starting votebank", "version", version.Version)

	// print flags
	parsedFlags := []interface{}{}
	parsedFlags = append(parsedFlags, "\n\tnetwork-id", flagNetworkID)
	parsedFlags = append(parsedFlags, "\n\tbind", bindEndpoint.String())
	parsedFlags = append(parsedFlags, "\n\tstorage", flagStorageConfig)
	parsedFlags = append(parsedFlags, "\n\tvariant", variant)
	parsedFlags = append(parsedFlags, "\n\toperations-limit", conf.OpsLimit)
	parsedFlags = append(parsedFlags, "\n\trate-limit-api", conf.RateLimitAPI)
	parsedFlags = append(parsedFlags, "\n\thttp-cache-adapter", conf.HTTPCacheAdapter)
	parsedFlags = append(parsedFlags, "\n\thttp-cache-pool-size", conf.HTTPCachePoolSize)
	parsedFlags = append(parsedFlags, "\n\thttp-cache-redis-addrs", flagHTTPCacheRedis.String())
	parsedFlags = append(parsedFlags, "\n\tjsonrpc", flagJSONRPC)
	parsedFlags = append(parsedFlags, "\n\tlog-level", flagLogLevel)
	parsedFlags = append(parsedFlags, "\n\tlog-output", flagLogOutput)

	log.Debug("parsed flags:", parsedFlags...)
}

func setLogging(level logging.Lvl, handler logging.Handler) {
	log.SetHandler(logging.LvlFilterHandler(level, handler))

	votebank.SetLogging(level, handler)
	ledger.SetLogging(level, handler)
	network.SetLogging(level, handler)
	api.SetLogging(level, handler)
	httpcache.SetLogging(level, handler)
	runner.SetLogging(level, handler)
}

func runNode() {
	st, err := storage.NewStorage(storageConfig)
	if err != nil {
		log.Crit("failed to initialize storage", "error", err)

		os.Exit(1)
	}

	metrics.InitPrometheusMetrics()
	metrics.SetVersion()

	l, err := ledger.NewLedger(st, votebank.NewProgram(variant), conf, ledger.WithMetrics(metrics.Ledger))
	if err != nil {
		log.Crit("failed to create ledger", "error", err)

		os.Exit(1)
	}

	serverConfig, _ := network.NewHTTP2ServerConfigFromEndpoint(bindEndpoint)
	server := network.NewHTTP2Server(serverConfig, flagVerbose)

	opts := []runner.Option{runner.WithJSONRPC(flagJSONRPC)}
	if len(flagAccessLog) > 0 {
		f, err := os.OpenFile(flagAccessLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Crit("failed to open access log", "error", err)

			os.Exit(1)
		}
		defer f.Close()

		opts = append(opts, runner.WithAccessLog(f))
	}

	// Execution group.
	var g run.Group
	{
		nr, err := runner.NewNodeRunner(l, server, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		g.Add(func() error {
			if err := nr.Start(); err != nil {
				log.Crit("failed to start node", "error", err)
				return err
			}
			return nil
		}, func(error) {
			nr.Stop()
		})
	}
	{
		cancel := make(chan struct{})
		g.Add(func() error {
			return cmdcommon.Interrupt(cancel)
		}, func(error) {
			close(cancel)
		})
	}

	if err := g.Run(); err != nil {
		log.Info("node stopped", "reason", err)
	}
}
