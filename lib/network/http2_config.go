package network

import (
	"net/url"
	"strings"
	"time"

	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/errors"
)

type HTTP2ServerConfig struct {
	Endpoint *url.URL
	Addr     string

	ReadTimeout,
	ReadHeaderTimeout,
	WriteTimeout,
	IdleTimeout time.Duration

	TLSCertFile,
	TLSKeyFile string
}

func parseTimeout(query url.Values, key string) (time.Duration, error) {
	d, err := time.ParseDuration(common.GetUrlQuery(query, key, "0s"))
	if err != nil || d < 0 {
		return 0, errors.InvalidEndpoint.Clone().SetData("error", "invalid '"+key+"'")
	}

	return d, nil
}

// NewHTTP2ServerConfigFromEndpoint reads the server settings from the
// endpoint, like
// `https://0.0.0.0:12345?TLSCertFile=a.crt&TLSKeyFile=a.key&ReadTimeout=5s`.
func NewHTTP2ServerConfigFromEndpoint(endpoint *url.URL) (config HTTP2ServerConfig, err error) {
	scheme := strings.ToLower(endpoint.Scheme)
	if scheme != "http" && scheme != "https" {
		err = errors.InvalidEndpoint.Clone().SetData("error", "scheme must be http or https")
		return
	}
	if len(endpoint.Host) < 1 {
		err = errors.InvalidEndpoint.Clone().SetData("error", "empty host")
		return
	}

	query := endpoint.Query()

	var ReadTimeout, ReadHeaderTimeout, WriteTimeout, IdleTimeout time.Duration
	if ReadTimeout, err = parseTimeout(query, "ReadTimeout"); err != nil {
		return
	}
	if ReadHeaderTimeout, err = parseTimeout(query, "ReadHeaderTimeout"); err != nil {
		return
	}
	if WriteTimeout, err = parseTimeout(query, "WriteTimeout"); err != nil {
		return
	}
	if IdleTimeout, err = parseTimeout(query, "IdleTimeout"); err != nil {
		return
	}

	TLSCertFile := query.Get("TLSCertFile")
	TLSKeyFile := query.Get("TLSKeyFile")

	if scheme == "https" && (len(TLSCertFile) < 1 || len(TLSKeyFile) < 1) {
		err = errors.InvalidEndpoint.Clone().SetData("error", "HTTPS needs `TLSCertFile` and `TLSKeyFile`")
		return
	}

	config = HTTP2ServerConfig{
		Endpoint:          endpoint,
		Addr:              endpoint.Host,
		ReadTimeout:       ReadTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
		TLSCertFile:       TLSCertFile,
		TLSKeyFile:        TLSKeyFile,
	}

	return
}

func (config HTTP2ServerConfig) IsHTTPS() bool {
	return len(config.TLSCertFile) > 0 && len(config.TLSKeyFile) > 0
}

func (config HTTP2ServerConfig) String() string {
	return string(common.MustMarshalJSON(config))
}
