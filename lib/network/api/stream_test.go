package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	observable "github.com/GianlucaGuarini/go-observable"
	"github.com/stretchr/testify/require"
)

func TestEventStreamSlowClientDoesNotBlockTrigger(t *testing.T) {
	ob := observable.New()
	event := "saved hash-slow"

	ctx, cancel := context.WithCancel(context.Background())
	r := httptest.NewRequest("GET", "/transactions/slow", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	renderFunc := func(args ...interface{}) ([]byte, error) {
		return json.Marshal(args[1])
	}
	es := NewEventStream(w, r, renderFunc, DefaultContentType)
	run := es.Start(ob, event)

	// nobody reads the stream yet
	done := make(chan struct{})
	go func() {
		for i := 0; i < StreamBufferSize*3; i++ {
			ob.Trigger(event, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.Fail(t, "trigger is blocked by the stream")
	}

	cancel()
	run()

	require.Equal(t, http.StatusOK, w.Code)

	body := strings.TrimSpace(w.Body.String())
	var lines []string
	if len(body) > 0 {
		lines = strings.Split(body, "\n")
	}
	require.True(t, len(lines) <= StreamBufferSize)
	if len(lines) > 0 {
		require.Equal(t, "0", lines[0])
	}
}
