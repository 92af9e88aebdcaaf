package kernel_test

import (
	"testing"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDateOf(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	t.Run("uses the location of the given time", func(t *testing.T) {
		// 2024-03-09 20:30 UTC is already 2024-03-10 in UTC+7
		instant := time.Date(2024, 3, 9, 20, 30, 0, 0, time.UTC)

		assert.Equal(t, "2024-03-09", kernel.LocalDateOf(instant).String())
		assert.Equal(t, "2024-03-10", kernel.LocalDateOf(instant.In(jakarta)).String())
	})

	t.Run("at combines date and wall clock", func(t *testing.T) {
		date := kernel.LocalDateOf(time.Date(2024, 3, 10, 8, 0, 0, 0, jakarta))
		closeTime, err := kernel.ParseTimeOfDay("22:00")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 3, 10, 22, 0, 0, 0, jakarta), date.At(closeTime, jakarta))
	})
}

func TestParseLocalDate(t *testing.T) {
	d, err := kernel.ParseLocalDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d.Midnight())

	_, err = kernel.ParseLocalDate("2024-13-01")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero kernel.LocalDate
	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		tod, err := kernel.ParseTimeOfDay("09:05")
		require.NoError(t, err)
		assert.Equal(t, 9, tod.Hour())
		assert.Equal(t, 5, tod.Minute())
		assert.Equal(t, 545, tod.Minutes())
		assert.Equal(t, "09:05", tod.String())
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		_, err := kernel.NewTimeOfDay(24, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewTimeOfDay(10, 60)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.TimeOfDayFromMinutes(1440)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.ParseTimeOfDay("noon")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("ordering", func(t *testing.T) {
		open, _ := kernel.NewTimeOfDay(9, 0)
		closing, _ := kernel.NewTimeOfDay(22, 0)

		assert.True(t, open.Before(closing))
		assert.False(t, closing.Before(open))
		assert.Equal(t, open, kernel.TimeOfDayOf(time.Date(2024, 1, 1, 9, 0, 59, 0, time.UTC)))
	})
}
