package cycloid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/fwojciec/cycloid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("ratio outside unit interval has no messages", func(t *testing.T) {
		t.Parallel()
		v := cycloid.Validate(cycloid.Candidate{Rp: 50, E: 2.5, R: 2, N: 10})
		assert.True(t, v.OK)
		assert.Empty(t, v.Messages)
		assert.NoError(t, v.Err())
	})

	t.Run("ratio inside unit interval warns but passes", func(t *testing.T) {
		t.Parallel()
		v := cycloid.Validate(cycloid.Candidate{Rp: 10, E: 2.5, R: 2, N: 10})
		assert.True(t, v.OK)
		require.Len(t, v.Messages, 1)
		assert.Equal(t, cycloid.SeverityWarning, v.Messages[0].Severity)
		assert.Contains(t, v.Messages[0].Text, "0.4")
		assert.Contains(t, v.Messages[0].Text, "atn")
		assert.NoError(t, v.Err())
	})

	t.Run("unit interval bounds are inclusive", func(t *testing.T) {
		t.Parallel()
		v := cycloid.Validate(cycloid.Candidate{Rp: 25, E: 2.5, R: 2, N: 10})
		assert.True(t, v.OK)
		require.Len(t, v.Warnings(), 1)
		assert.Contains(t, v.Warnings()[0].Text, "= 1 ")
	})

	t.Run("single pin is rejected", func(t *testing.T) {
		t.Parallel()
		v := cycloid.Validate(cycloid.Candidate{Rp: 50, E: 2.5, R: 2, N: 1})
		assert.False(t, v.OK)
		require.Len(t, v.Messages, 1)
		assert.Equal(t, cycloid.Message{Severity: cycloid.SeverityError, Text: cycloid.MsgPinCount}, v.Messages[0])
	})

	t.Run("fractional pin count is rejected", func(t *testing.T) {
		t.Parallel()
		v := cycloid.Validate(cycloid.Candidate{Rp: 50, E: 2.5, R: 2, N: 10.5})
		assert.False(t, v.OK)
		require.Len(t, v.Errors(), 1)
		assert.Equal(t, cycloid.MsgPinCount, v.Errors()[0].Text)
	})

	t.Run("pin count beyond the cap is rejected", func(t *testing.T) {
		t.Parallel()
		for _, n := range []float64{cycloid.MaxPinCount + 1, 1e20, math.MaxFloat64} {
			v := cycloid.Validate(cycloid.Candidate{Rp: 50, E: 2.5, R: 2, N: n})
			assert.False(t, v.OK, "N=%g", n)
			require.Len(t, v.Errors(), 1, "N=%g", n)
			assert.Equal(t, cycloid.MsgPinCount, v.Errors()[0].Text)
		}
	})

	t.Run("pin count at the cap is accepted", func(t *testing.T) {
		t.Parallel()
		v := cycloid.Validate(cycloid.Candidate{Rp: 50, E: 2.5, R: 2, N: cycloid.MaxPinCount})
		assert.True(t, v.OK)
	})

	t.Run("negative radius is rejected and still warns", func(t *testing.T) {
		t.Parallel()
		v := cycloid.Validate(cycloid.Candidate{Rp: -1, E: 2.5, R: 2, N: 10})
		assert.False(t, v.OK)
		require.Len(t, v.Messages, 2)
		assert.Equal(t, cycloid.Message{Severity: cycloid.SeverityError, Text: cycloid.MsgPositive}, v.Messages[0])
		assert.Equal(t, cycloid.SeverityWarning, v.Messages[1].Severity)
	})

	t.Run("zero eccentricity fails positivity and denominator", func(t *testing.T) {
		t.Parallel()
		v := cycloid.Validate(cycloid.Candidate{Rp: 50, E: 0, R: 2, N: 10})
		assert.False(t, v.OK)
		assert.Equal(t, []cycloid.Message{
			{Severity: cycloid.SeverityError, Text: cycloid.MsgPositive},
			{Severity: cycloid.SeverityError, Text: cycloid.MsgDenominator},
		}, v.Messages)
	})

	t.Run("zero pin count fails count and denominator in order", func(t *testing.T) {
		t.Parallel()
		v := cycloid.Validate(cycloid.Candidate{Rp: 50, E: 2.5, R: 2, N: 0})
		assert.False(t, v.OK)
		assert.Equal(t, []cycloid.Message{
			{Severity: cycloid.SeverityError, Text: cycloid.MsgPinCount},
			{Severity: cycloid.SeverityError, Text: cycloid.MsgDenominator},
		}, v.Messages)
	})

	t.Run("non-finite values are rejected", func(t *testing.T) {
		t.Parallel()
		for _, c := range []cycloid.Candidate{
			{Rp: math.NaN(), E: 2.5, R: 2, N: 10},
			{Rp: math.Inf(1), E: 2.5, R: 2, N: 10},
			{Rp: 50, E: 2.5, R: 2, N: math.Inf(1)},
			{Rp: 50, E: 2.5, R: 2, N: math.NaN()},
		} {
			v := cycloid.Validate(c)
			assert.False(t, v.OK, "%+v", c)
			assert.NotEmpty(t, v.Errors(), "%+v", c)
		}
	})
}

func TestValidation_Err(t *testing.T) {
	t.Parallel()

	v := cycloid.Validate(cycloid.Candidate{Rp: 50, E: 0, R: 2, N: 1})
	err := v.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cycloid.ErrValidation))
	assert.Contains(t, err.Error(), cycloid.MsgPinCount)
	assert.Contains(t, err.Error(), cycloid.MsgPositive)
	assert.Contains(t, err.Error(), cycloid.MsgDenominator)
}

func TestCandidate_Params(t *testing.T) {
	t.Parallel()

	t.Run("valid candidate converts", func(t *testing.T) {
		t.Parallel()
		p, err := cycloid.DefaultCandidate().Params()
		require.NoError(t, err)
		assert.Equal(t, cycloid.Params{Rp: 50, E: 2.5, R: 2, N: 10}, p)
		assert.Equal(t, 2.0, p.Ratio())
	})

	t.Run("warnings do not block", func(t *testing.T) {
		t.Parallel()
		p, err := cycloid.Candidate{Rp: 10, E: 2.5, R: 2, N: 10}.Params()
		require.NoError(t, err)
		assert.InDelta(t, 0.4, p.Ratio(), 1e-15)
	})

	t.Run("invalid candidate returns validation error", func(t *testing.T) {
		t.Parallel()
		_, err := cycloid.Candidate{Rp: 50, E: 2.5, R: -2, N: 10}.Params()
		require.Error(t, err)
		assert.True(t, errors.Is(err, cycloid.ErrValidation))
		assert.Contains(t, err.Error(), "positive")
	})
}

func TestParseCandidate(t *testing.T) {
	t.Parallel()

	t.Run("parses trimmed fields", func(t *testing.T) {
		t.Parallel()
		c, err := cycloid.ParseCandidate(" 50", "2.5 ", "2", "10")
		require.NoError(t, err)
		assert.Equal(t, cycloid.DefaultCandidate(), c)
	})

	t.Run("empty field", func(t *testing.T) {
		t.Parallel()
		_, err := cycloid.ParseCandidate("50", "", "2", "10")
		require.Error(t, err)
		assert.True(t, errors.Is(err, cycloid.ErrValidation))
		assert.Contains(t, err.Error(), "e is required")
	})

	t.Run("non-numeric field", func(t *testing.T) {
		t.Parallel()
		_, err := cycloid.ParseCandidate("50", "2.5", "2", "ten")
		require.Error(t, err)
		assert.True(t, errors.Is(err, cycloid.ErrValidation))
		assert.Contains(t, err.Error(), `N must be a number, got "ten"`)
	})

	t.Run("fractional N parses and is left to validation", func(t *testing.T) {
		t.Parallel()
		c, err := cycloid.ParseCandidate("50", "2.5", "2", "7.5")
		require.NoError(t, err)
		assert.False(t, cycloid.Validate(c).OK)
	})
}
