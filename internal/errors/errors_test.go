package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/castaway-games/angler/internal/errors"
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
			message:  "no save data found",
			expected: "NOT_FOUND: no save data found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid sell command",
			expected: "INVALID_ARGUMENT: invalid sell command",
		},
		{
			name:     "data loss error",
			code:     errors.CodeDataLoss,
			message:  "save file has been tampered with",
			expected: "DATA_LOSS: save file has been tampered with",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.FailedPrecondition("zone is locked").
		WithMeta("zone", "Sea").
		WithMeta("required_item", "Boat")

	s.Assert().Equal("Sea", err.Meta["zone"])
	s.Assert().Equal("Boat", err.Meta["required_item"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("no save data found")
	wrapped := errors.Wrap(base, "failed to load session")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("failed to load session", wrapped.Message)
	s.Assert().ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	base := fmt.Errorf("disk full")
	wrapped := errors.Wrap(base, "failed to write save file")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "ignored"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("checksum mismatch")
	wrapped := errors.WrapWithCode(base, errors.CodeDataLoss, "save file has been tampered with")

	s.Assert().Equal(errors.CodeDataLoss, wrapped.Code)
	s.Assert().True(errors.IsDataLoss(wrapped))
	s.Assert().True(wrapped.Code.Fatal())
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPrecondition("not enough money")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("not enough money", errors.GetMessage(errors.FailedPrecondition("not enough money")))
}

func (s *ErrorsTestSuite) TestTypeHelpers() {
	s.Assert().True(errors.IsNotFound(errors.NotFound("x")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgumentf("bad slot %d", 42)))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("x")))
	s.Assert().False(errors.IsDataLoss(errors.NotFound("x")))
}
