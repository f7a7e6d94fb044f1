package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	observable "github.com/GianlucaGuarini/go-observable"

	"boscoin.io/votebank/lib/network/httputils"
)

const DefaultContentType = "application/json"

// StreamBufferSize is how many events a slow client may fall behind before
// further events are dropped for it.
const StreamBufferSize = 64

// EventStream writes one json document per line for every observed event
// until the client goes away.
type EventStream struct {
	contentType string
	renderFunc  RenderFunc
	request     *http.Request
	writer      http.ResponseWriter
	flusher     http.Flusher
	err         error
	rendered    bool
}

// RenderFunc gets the event name first and the triggered values after.
type RenderFunc func(args ...interface{}) ([]byte, error)

func NewEventStream(w http.ResponseWriter, r *http.Request, renderFunc RenderFunc, ct string) *EventStream {
	es := &EventStream{
		request:     r,
		writer:      w,
		renderFunc:  renderFunc,
		contentType: ct,
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		es.err = fmt.Errorf("http: can't do chunked response")
	} else {
		es.flusher = flusher
	}

	return es
}

// Render writes the current state before any event arrives.
func (s *EventStream) Render(args ...interface{}) {
	if s.err != nil {
		return
	}

	renderArgs := append([]interface{}{"pre"}, args...)

	bs, err := s.renderFunc(renderArgs...)
	if err != nil {
		bs = s.errMessage(err)
	}

	s.write(bs)
}

func (s *EventStream) write(bs []byte) {
	if !s.rendered {
		s.writer.Header().Set("Content-Type", s.contentType)
		s.writer.WriteHeader(http.StatusOK)
		s.rendered = true
	}

	fmt.Fprintf(s.writer, "%s\n", bs)
	s.flusher.Flush()
}

// Start subscribes to `event` and returns the blocking loop; the caller
// can trigger something between the two. The observer callback never
// blocks, so a stalled client can not hold up whoever triggers `event`.
func (s *EventStream) Start(ob *observable.Observable, event string) func() {
	if s.err != nil {
		http.Error(s.writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return func() {}
	}

	msg := make(chan []byte, StreamBufferSize)
	stop := make(chan struct{})

	onFunc := func(args ...interface{}) {
		payload, err := s.renderFunc(append([]interface{}{event}, args...)...)
		if err != nil {
			payload = s.errMessage(err)
		}

		select {
		case msg <- payload:
		case <-stop:
		default:
			log.Debug("stream buffer is full; event dropped", "event", event)
		}
	}
	ob.On(event, onFunc)

	return func() {
		defer ob.Off(event, onFunc)

		if !s.rendered {
			s.writer.Header().Set("Content-Type", s.contentType)
			s.writer.WriteHeader(http.StatusOK)
			s.flusher.Flush()
			s.rendered = true
		}

		for {
			select {
			case payload := <-msg:
				s.write(payload)
			case <-s.request.Context().Done():
				close(stop)
				return
			}
		}
	}
}

func (s *EventStream) errMessage(err error) []byte {
	b, err := json.Marshal(httputils.NewErrorProblem(err, httputils.StatusCode(err)))
	if err != nil {
		return []byte{}
	}
	return b
}
