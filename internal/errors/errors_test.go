package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "pokemon not found",
			expected: "NOT_FOUND: pokemon not found",
		},
		{
			name:     "unavailable error",
			code:     errors.CodeUnavailable,
			message:  "pokeapi unreachable",
			expected: "UNAVAILABLE: pokeapi unreachable",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection reset")
	wrapped := errors.Wrap(baseErr, "failed to list pokemon")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to list pokemon", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Equal("INTERNAL: failed to list pokemon: connection reset", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("resource not found").WithMeta("url", "https://pokeapi.co/api/v2/pokemon/0/")
	wrapped := errors.Wrap(baseErr, "failed to load pokemon 0")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("https://pokeapi.co/api/v2/pokemon/0/", wrapped.Meta["url"])

	// metadata is copied, not shared
	wrapped.WithMeta("page", 3)
	s.NotContains(baseErr.Meta, "page")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("dial tcp: timeout")
	wrapped := errors.WrapWithCodef(baseErr, errors.CodeUnavailable, "GET %s failed", "/type")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("GET /type failed", wrapped.Message)
	s.ErrorIs(wrapped, baseErr)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestFromContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	canceled := errors.FromContext(fmt.Errorf("get: %w", ctx.Err()), "request canceled")
	s.Require().NotNil(canceled)
	s.True(errors.IsCanceled(canceled))

	deadline := errors.FromContext(context.DeadlineExceeded, "request timed out")
	s.Require().NotNil(deadline)
	s.Equal(errors.CodeDeadlineExceeded, deadline.Code)

	s.Nil(errors.FromContext(fmt.Errorf("boom"), "unrelated"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
	s.True(errors.Is(errors.Wrap(errors.NotFound("a"), "b"), errors.NotFound("c")))
}

func (s *ErrorsTestSuite) TestHelpers() {
	s.Equal(errors.CodeNotFound, errors.GetCode(errors.Wrap(errors.NotFound("x"), "y")))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))

	s.Equal("wrapped message", errors.GetMessage(errors.Wrap(errors.NotFound("x"), "wrapped message")))
	s.Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Empty(errors.GetMessage(nil))
	s.Nil(errors.GetMeta(fmt.Errorf("standard error")))

	s.True(errors.IsUnavailable(errors.Unavailablef("status %d", 503)))
	s.True(errors.IsInternal(errors.Internalf("decode %s", "body")))
	s.True(errors.IsNotFound(errors.NotFoundf("pokemon %s", "missingno")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeDeadlineExceeded, 504},
		{errors.CodeCanceled, 499},
		{errors.CodeInternal, 500},
		{errors.CodeUnavailable, 502},
		{errors.Code("SOMETHING_ELSE"), 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}
