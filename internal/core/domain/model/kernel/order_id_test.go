package kernel_test

import (
	"regexp"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderID_MatchesPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{2}[0-9]{4}$`)

	for range 1000 {
		id := kernel.GenerateOrderID()
		require.NoError(t, id.Validate())
		assert.Regexp(t, pattern, id.String())
	}
}

func TestGenerateOrderID_IndependentDraws(t *testing.T) {
	// Two consecutive draws are independent; over a handful of attempts at
	// least one pair must differ (collision probability per pair is ~1/6M).
	a := kernel.GenerateOrderID()
	b := kernel.GenerateOrderID()
	c := kernel.GenerateOrderID()
	assert.False(t, a.IsEqual(b) && b.IsEqual(c))
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("valid identifier round-trips", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("QW4821")
		require.NoError(t, err)
		assert.Equal(t, "QW4821", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("rejects malformed identifiers", func(t *testing.T) {
		for _, s := range []string{"", "qw4821", "QWE4821", "QW482", "QW48211", "1W4821", "QW48A1"} {
			_, err := kernel.OrderIDFromString(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", s)
		}
	})
}

func TestOrderID_Validate_ZeroValue(t *testing.T) {
	var id kernel.OrderID
	require.Error(t, id.Validate())
}

func TestOrderID_IsEqual(t *testing.T) {
	a, err := kernel.OrderIDFromString("AB1234")
	require.NoError(t, err)
	b, err := kernel.OrderIDFromString("AB1234")
	require.NoError(t, err)
	c, err := kernel.OrderIDFromString("CD5678")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
