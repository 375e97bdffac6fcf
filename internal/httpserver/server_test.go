package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/httpserver"
	"github.com/KirkDiggler/pokedex/internal/pkg/idgen"
)

type pingRoutes struct{}

func (pingRoutes) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	}).Methods(http.MethodGet)
}

type ServerTestSuite struct {
	suite.Suite
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) TestNewValidation() {
	testCases := []struct {
		name   string
		config *httpserver.Config
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "missing addr", config: &httpserver.Config{Handlers: []httpserver.RouteRegistrar{pingRoutes{}}}, errMsg: "Addr"},
		{name: "missing handlers", config: &httpserver.Config{Addr: ":0"}, errMsg: "Handlers"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			srv, err := httpserver.New(tc.config)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(srv)
		})
	}
}

func (s *ServerTestSuite) TestRoutes() {
	srv, err := httpserver.New(&httpserver.Config{
		Addr:        ":0",
		Handlers:    []httpserver.RouteRegistrar{pingRoutes{}},
		IDGenerator: idgen.NewSequential("req"),
	})
	s.Require().NoError(err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	s.Equal("pong", rec.Body.String())
	s.Equal("req_1", rec.Header().Get(httpserver.RequestIDHeader))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body["status"])
}

func (s *ServerTestSuite) TestServeAndShutdown() {
	srv, err := httpserver.New(&httpserver.Config{
		Addr:     "127.0.0.1:0",
		Handlers: []httpserver.RouteRegistrar{pingRoutes{}},
	})
	s.Require().NoError(err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(lis) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/ping")
	s.Require().NoError(err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	s.Equal("pong", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Require().NoError(srv.Shutdown(ctx))
	s.NoError(<-done)
}
