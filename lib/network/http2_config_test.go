package network

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boscoin.io/votebank/lib/errors"
)

func TestHTTP2ServerConfigHTTPSAndTLS(t *testing.T) {
	{ // HTTPS + TLSCertFile + TLSKeyFile
		endpoint, _ := url.Parse("https://localhost:12345?TLSCertFile=faketlscert&TLSKeyFile=faketlskey")

		config, err := NewHTTP2ServerConfigFromEndpoint(endpoint)
		require.Nil(t, err)
		require.True(t, config.IsHTTPS())
		require.Equal(t, "localhost:12345", config.Addr)
	}

	{ // HTTPS + TLSCertFile
		endpoint, _ := url.Parse("https://localhost:12345?TLSCertFile=faketlscert")

		_, err := NewHTTP2ServerConfigFromEndpoint(endpoint)
		require.NotNil(t, err)
		require.True(t, errors.InvalidEndpoint.Is(err))
	}

	{ // HTTPS + TLSKeyFile
		endpoint, _ := url.Parse("https://localhost:12345?TLSKeyFile=faketlskey")

		_, err := NewHTTP2ServerConfigFromEndpoint(endpoint)
		require.NotNil(t, err)
	}

	{ // HTTP
		endpoint, _ := url.Parse("http://localhost:12345")

		config, err := NewHTTP2ServerConfigFromEndpoint(endpoint)
		require.Nil(t, err)
		require.False(t, config.IsHTTPS())
	}
}

func TestHTTP2ServerConfigBadEndpoint(t *testing.T) {
	for _, s := range []string{
		"ftp://localhost:12345",
		"http://",
	} {
		endpoint, _ := url.Parse(s)
		_, err := NewHTTP2ServerConfigFromEndpoint(endpoint)
		require.NotNil(t, err, s)
	}
}

func TestHTTP2ServerConfigTimeouts(t *testing.T) {
	{
		endpoint, _ := url.Parse("http://localhost:12345?ReadTimeout=3s&WriteTimeout=1m&IdleTimeout=10s")

		config, err := NewHTTP2ServerConfigFromEndpoint(endpoint)
		require.Nil(t, err)
		require.Equal(t, 3*time.Second, config.ReadTimeout)
		require.Equal(t, time.Duration(0), config.ReadHeaderTimeout)
		require.Equal(t, time.Minute, config.WriteTimeout)
		require.Equal(t, 10*time.Second, config.IdleTimeout)
	}

	{ // bad duration
		endpoint, _ := url.Parse("http://localhost:12345?ReadTimeout=showme")

		_, err := NewHTTP2ServerConfigFromEndpoint(endpoint)
		require.NotNil(t, err)
	}

	{ // negative duration
		endpoint, _ := url.Parse("http://localhost:12345?IdleTimeout=-1s")

		_, err := NewHTTP2ServerConfigFromEndpoint(endpoint)
		require.NotNil(t, err)
	}
}
