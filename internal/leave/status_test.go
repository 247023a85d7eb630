package leave_test

import (
	"testing"
	"time"

	"github.com/SopitaJW/leave-management/internal/leave"
	leaveerrors "github.com/SopitaJW/leave-management/internal/leave/errors"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", v)
	assert.NoError(t, err)
	return d
}

func TestParseStatus(t *testing.T) {
	t.Run("accepts labels and internal forms", func(t *testing.T) {
		for _, v := range []string{"Pending", "PENDING", "pending", " Pending "} {
			status, err := leave.ParseStatus(v)
			assert.NoError(t, err)
			assert.Equal(t, leave.StatusPending, status)
		}

		status, err := leave.ParseStatus("approved")
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, status)
	})

	t.Run("unknown value", func(t *testing.T) {
		_, err := leave.ParseStatus("cancelled")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus)
	})
}

func TestParseStatusFilter(t *testing.T) {
	for _, v := range []string{"", "all", "All", "ALL"} {
		status, err := leave.ParseStatusFilter(v)
		assert.NoError(t, err)
		assert.Empty(t, status)
	}

	status, err := leave.ParseStatusFilter("Rejected")
	assert.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, status)

	_, err = leave.ParseStatusFilter("bogus")
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus)
}

func TestParseDecision(t *testing.T) {
	t.Run("terminal states only", func(t *testing.T) {
		status, err := leave.ParseDecision("Approved")
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, status)

		status, err = leave.ParseDecision("rejected")
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, status)
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		_, err := leave.ParseDecision("Pending")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDecision)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := leave.ParseDecision("maybe")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDecision)
	})
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", leave.StatusLabel(leave.StatusPending))
	assert.Equal(t, "Approved", leave.StatusLabel(leave.StatusApproved))
	assert.Equal(t, "Rejected", leave.StatusLabel(leave.StatusRejected))
}

func TestDaysBetween(t *testing.T) {
	start := mustDate(t, "2026-09-07")
	assert.Equal(t, 1, leave.DaysBetween(start, mustDate(t, "2026-09-07")))
	assert.Equal(t, 3, leave.DaysBetween(start, mustDate(t, "2026-09-09")))
	assert.Equal(t, 6, leave.DaysBetween(start, mustDate(t, "2026-09-12")))
}
