package network

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/mux"
	"github.com/ulule/limiter"
	"github.com/ulule/limiter/drivers/middleware/stdlib"
	"github.com/ulule/limiter/drivers/store/memory"

	"boscoin.io/votebank/lib/errors"
	"boscoin.io/votebank/lib/metrics"
	"boscoin.io/votebank/lib/network/httputils"
)

func RecoverMiddleware(printStack bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("panic: %v", r)
					}
					httputils.WriteJSONError(w, err)
					log.Error("recover an panic", "err", err)
					if printStack == true {
						debug.PrintStack()
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware limits requests per client ip by `rule`, like
// `100-S` or `1000-M`. Empty rule disables the limit.
func RateLimitMiddleware(rule string) (mux.MiddlewareFunc, error) {
	if len(rule) < 1 {
		return func(next http.Handler) http.Handler { return next }, nil
	}

	rate, err := limiter.NewRateFromFormatted(rule)
	if err != nil {
		return nil, errors.BadRequestParameter.Clone().SetData("rate-limit", rule)
	}

	m := stdlib.NewMiddleware(
		limiter.New(memory.NewStore(), rate),
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			log.Debug("rate limit reached", "remote", r.RemoteAddr, "uri", r.URL.Path)
			httputils.WriteJSONError(w, errors.TooManyRequests)
		}),
	)

	return m.Handler, nil
}

// MetricsMiddleware counts requests by the matched route template.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		writer := &HTTP2ResponseLog15Writer{w: w}

		next.ServeHTTP(writer, r)

		endpoint := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tpl
			}
		}

		status := writer.Status()
		if status == 0 {
			status = http.StatusOK
		}

		metrics.API.ObserveRequest(endpoint, r.Method, status, time.Since(begin).Seconds())
	})
}
