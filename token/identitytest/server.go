// Package identitytest provides a fake identity service for token exchange tests.
package identitytest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// Response is one canned reply from the fake identity service.
type Response struct {
	Status  int
	Headers map[string]string
	Body    string
}

// Request is what the fake server received.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// Server replies with queued responses in order and repeats the last one
// once the queue is drained.
type Server struct {
	*httptest.Server

	lock     sync.Mutex
	queue    []Response
	last     Response
	requests []Request
}

// NewServer starts a fake identity service that is closed when t finishes.
func NewServer(t testing.TB, responses ...Response) *Server {
	t.Helper()
	s := &Server{
		queue: responses,
		last:  Response{Status: http.StatusOK, Body: `{"access_token":"default-token","expires_in":3600}`},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Enqueue appends responses to the reply queue.
func (s *Server) Enqueue(responses ...Response) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.queue = append(s.queue, responses...)
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.lock.Lock()
	defer s.lock.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.lock.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	resp := s.last
	if len(s.queue) > 0 {
		resp = s.queue[0]
		s.queue = s.queue[1:]
		s.last = resp
	}
	s.lock.Unlock()

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", "application/json")
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp.Body)
}

// TokenResponse is a successful reply carrying accessToken and expiresIn.
func TokenResponse(accessToken string, expiresIn int) Response {
	return Response{
		Status: http.StatusOK,
		Body:   `{"access_token":"` + accessToken + `","token_type":"bearer","expires_in":` + strconv.Itoa(expiresIn) + `,"scope":"*"}`,
	}
}
