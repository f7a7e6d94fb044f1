package network

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boscoin.io/votebank/lib/errors"
)

func TestHTTP2ServerAddHandler(t *testing.T) {
	endpoint, _ := url.Parse("http://localhost:12345")
	config, err := NewHTTP2ServerConfigFromEndpoint(endpoint)
	require.Nil(t, err)

	s := NewHTTP2Server(config, false)
	require.False(t, s.IsRunning())

	s.AddMiddleware(RecoverMiddleware(false))
	s.AddHandler(UrlPathPrefixAPI+"/showme", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("findme"))
	}).Methods("GET")

	rec := httptest.NewRecorder()
	NewHTTP2Log15Handler(log, s.Router()).ServeHTTP(rec, httptest.NewRequest("GET", UrlPathPrefixAPI+"/showme", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "findme", rec.Body.String())

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("POST", UrlPathPrefixAPI+"/showme", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHTTP2ServerStartTwice(t *testing.T) {
	endpoint, _ := url.Parse("http://127.0.0.1:0")
	config, err := NewHTTP2ServerConfigFromEndpoint(endpoint)
	require.NoError(t, err)

	s := NewHTTP2Server(config, false)

	started := make(chan error, 1)
	go func() {
		started <- s.Start()
	}()

	for i := 0; i < 500 && !s.IsRunning(); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	require.True(t, s.IsRunning())

	err = s.Start()
	require.True(t, errors.ServerAlreadyRunning.Is(err))

	require.NoError(t, s.Stop())
	select {
	case err := <-started:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.Fail(t, "server did not stop")
	}
	require.False(t, s.IsRunning())
}
