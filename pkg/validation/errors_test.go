package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsCollectsCodesInOrder(t *testing.T) {
	var errs Errors
	errs.Positive("amount", 0)
	errs.Range("rate", 120, 0, 100)
	errs.NonNegative("downPayment", -1)
	errs.OneOf("paymentType", "balloon", "annuity", "differentiated")

	require.False(t, errs.Valid())
	assert.Equal(t, []string{
		"amount.positive",
		"rate.range",
		"downPayment.negative",
		"paymentType.invalid",
	}, errs.Codes())
	assert.True(t, errs.Has("rate.range"))
	assert.False(t, errs.Has("rate.positive"))
	assert.Contains(t, errs.Error(), "amount must be greater than 0")
	assert.Error(t, errs.Err())
}

func TestErrorsValidWhenEmpty(t *testing.T) {
	var errs Errors
	errs.Positive("amount", 1)
	errs.Range("rate", 0, 0, 100)
	errs.Range("rate", 100, 0, 100)
	errs.NonNegative("extra", 0)
	errs.OneOf("type", "annuity", "annuity", "differentiated")

	assert.True(t, errs.Valid())
	assert.NoError(t, errs.Err())
	assert.Empty(t, errs.Codes())
}

func TestRangeRejectsNaN(t *testing.T) {
	var errs Errors
	errs.Range("rate", math.NaN(), 0, 100)
	assert.Equal(t, []string{"rate.range"}, errs.Codes())
}

func TestNonFiniteValuesAreRejected(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		var errs Errors
		errs.Positive("amount", v)
		errs.NonNegative("extra", v)
		errs.Range("rate", v, math.Inf(-1), math.Inf(1))
		assert.Equal(t, []string{"amount.positive", "extra.negative", "rate.range"}, errs.Codes(), "%v", v)
	}
}
