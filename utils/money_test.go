package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentsFromDollars(t *testing.T) {
	assert.Equal(t, int64(1299), CentsFromDollars(12.99))
	assert.Equal(t, int64(999), CentsFromDollars(9.99))
	assert.Equal(t, int64(0), CentsFromDollars(0))
	// binary float noise must round to the intended cent
	assert.Equal(t, int64(10), CentsFromDollars(0.1))
	assert.Equal(t, int64(2997), CentsFromDollars(29.97))
}

func TestDollarsFromCents(t *testing.T) {
	assert.Equal(t, 12.99, DollarsFromCents(1299))
	assert.Equal(t, 0.0, DollarsFromCents(0))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$12.99", FormatUSD(1299))
	assert.Equal(t, "$0.05", FormatUSD(5))
	assert.Equal(t, "$1000.00", FormatUSD(100000))
	assert.Equal(t, "-$3.50", FormatUSD(-350))
}
