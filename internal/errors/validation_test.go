package errors_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/idlemon-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("store", "is required")
	ve.AddFieldError("idle_timeout", "must be positive")

	s.True(ve.HasErrors())
	s.Equal("validation failed: idle_timeout: must be positive; store: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Clock").Fieldf("CritChance", "must be between %d and %d", 0, 1)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidatePositiveDuration() {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveDuration("ok", 5*time.Second, vb)
	s.NoError(vb.Build())

	errors.ValidatePositiveDuration("zero", time.Duration(0), vb)
	s.Error(vb.Build())
}

func (s *ValidationTestSuite) TestValidateProbability() {
	testCases := []struct {
		name      string
		value     float64
		shouldErr bool
	}{
		{"zero", 0, false},
		{"sixteenth", 1.0 / 16, false},
		{"one", 1, false},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateProbability("p", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
