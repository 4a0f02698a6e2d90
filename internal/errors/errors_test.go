package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-rooms/internal/errors"
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
			message:  "room template not found",
			expected: "NOT_FOUND: room template not found",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "position is out of bounds",
			expected: "OUT_OF_RANGE: position is out of bounds",
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

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.NotFound("template missing").WithMeta("name", "crypt")
	wrapped := errors.Wrap(base, "failed to update template")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to update template", wrapped.Message)
	s.Equal("crypt", wrapped.Meta["name"])
	s.Equal(base, wrapped.Unwrap())

	// the wrapped meta is a copy
	wrapped.WithMeta("extra", 1)
	s.NotContains(base.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	base := fmt.Errorf("connection reset")
	wrapped := errors.Wrap(base, "failed to save snapshot")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.Internal("boom").WithMeta("attempt", 3)
	wrapped := errors.WrapWithCode(base, errors.CodeUnavailable, "edgar unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal(3, wrapped.Meta["attempt"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestIsMatchesByCode() {
	err := errors.Wrap(errors.AlreadyExistsf("room template %q already exists", "crypt"), "add failed")

	s.True(errors.Is(err, errors.AlreadyExists("")))
	s.False(errors.Is(err, errors.NotFound("")))
	s.True(errors.IsAlreadyExists(err))
}

func (s *ErrorsTestSuite) TestTypeCheckers() {
	testCases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", errors.NotFound("x"), errors.IsNotFound},
		{"invalid argument", errors.InvalidArgument("x"), errors.IsInvalidArgument},
		{"already exists", errors.AlreadyExists("x"), errors.IsAlreadyExists},
		{"failed precondition", errors.FailedPrecondition("x"), errors.IsFailedPrecondition},
		{"out of range", errors.OutOfRange("x"), errors.IsOutOfRange},
		{"resource exhausted", errors.ResourceExhausted("x"), errors.IsResourceExhausted},
		{"internal", errors.Internal("x"), errors.IsInternal},
		{"unavailable", errors.Unavailable("x"), errors.IsUnavailable},
		{"plain error is internal", fmt.Errorf("x"), errors.IsInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(tc.check(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestGetters() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("", errors.GetMessage(nil))
	s.Nil(errors.GetMeta(nil))

	err := errors.OutOfRange("outside region").WithMeta("x", 11.0)
	s.Equal("outside region", errors.GetMessage(err))
	s.Equal(11.0, errors.GetMeta(err)["x"])
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestFromHTTPStatus() {
	s.Equal(errors.CodeOK, errors.FromHTTPStatus(http.StatusOK))
	s.Equal(errors.CodeInvalidArgument, errors.FromHTTPStatus(http.StatusBadRequest))
	s.Equal(errors.CodeUnauthenticated, errors.FromHTTPStatus(http.StatusUnauthorized))
	s.Equal(errors.CodeNotFound, errors.FromHTTPStatus(http.StatusNotFound))
	s.Equal(errors.CodeResourceExhausted, errors.FromHTTPStatus(http.StatusTooManyRequests))
	s.Equal(errors.CodeUnavailable, errors.FromHTTPStatus(http.StatusBadGateway))
	s.Equal(errors.CodeInternal, errors.FromHTTPStatus(http.StatusTeapot))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	original := errors.FailedPrecondition("position is too close to an existing placement").
		WithMeta("item_id", "torch_1")

	grpcErr := errors.ToGRPCError(original)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Equal("position is too close to an existing placement", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsFailedPrecondition(back))
	s.Equal("torch_1", errors.GetMeta(back)["item_id"])
}

func (s *ErrorsTestSuite) TestGRPCConversionEdges() {
	s.Nil(errors.ToGRPCError(nil))
	s.Nil(errors.FromGRPCError(nil))

	plain := errors.ToGRPCError(fmt.Errorf("plain"))
	s.Equal(codes.Internal, status.Code(plain))

	already := status.Error(codes.NotFound, "gone")
	s.Equal(already, errors.ToGRPCError(already))
	s.True(errors.IsNotFound(errors.FromGRPCError(already)))
}

func (s *ErrorsTestSuite) TestWithPosition() {
	err := errors.OutOfRange("position is out of bounds").WithPosition(11, -0.5)
	s.Equal(map[string]any{"x": 11.0, "y": -0.5}, err.Meta)

	grpcErr := errors.ToGRPCError(err)
	back := errors.FromGRPCError(grpcErr)
	s.Equal("11", errors.GetMeta(back)["x"])
	s.Equal("-0.5", errors.GetMeta(back)["y"])
}

func (s *ErrorsTestSuite) TestUnknownCodeMapsToUnknown() {
	s.Equal(codes.Unknown, errors.Code("SOMETHING_ELSE").GRPCCode())
	s.Equal(codes.OutOfRange, errors.CodeOutOfRange.GRPCCode())
}

func (s *ErrorsTestSuite) TestGRPCMessageCarriesCauseChain() {
	inner := errors.AlreadyExistsf("room template %q already exists", "A").WithMeta("name", "A")
	wrapped := errors.Wrapf(inner, "failed to add template %q", "A")

	st, ok := status.FromError(errors.ToGRPCError(wrapped))
	s.Require().True(ok)
	s.Equal(codes.AlreadyExists, st.Code())
	s.Equal(`failed to add template "A": room template "A" already exists`, st.Message())

	back := errors.FromGRPCError(errors.ToGRPCError(wrapped))
	s.True(errors.IsAlreadyExists(back))
	s.Equal("A", errors.GetMeta(back)["name"])

	plainCause := errors.WrapWithCode(fmt.Errorf("dial tcp: refused"), errors.CodeUnavailable, "edgar is unreachable")
	s.Equal("edgar is unreachable: dial tcp: refused", status.Convert(errors.ToGRPCError(plainCause)).Message())
}
