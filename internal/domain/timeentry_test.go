package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntry_Close(t *testing.T) {
	in := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	e := &TimeEntry{
		ID:            "e1",
		UserID:        "u1",
		ClockIn:       in,
		PayRateAtTime: 18.00,
	}
	require.True(t, e.Open())

	out := time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, e.Close(out))

	assert.False(t, e.Open())
	require.NotNil(t, e.ClockOut)
	assert.Equal(t, out, *e.ClockOut)
	require.NotNil(t, e.DurationSeconds)
	assert.Equal(t, 16200, *e.DurationSeconds)
	require.NotNil(t, e.GrossPay)
	assert.InDelta(t, 81.00, *e.GrossPay, 1e-9)
}

func TestTimeEntry_CloseTwiceRefused(t *testing.T) {
	in := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	e := &TimeEntry{ID: "e1", ClockIn: in, PayRateAtTime: 20.00}

	require.NoError(t, e.Close(in.Add(time.Hour)))
	firstGross := *e.GrossPay
	firstSecs := *e.DurationSeconds

	err := e.Close(in.Add(5 * time.Hour))
	assert.ErrorIs(t, err, ErrConflict)

	// Derived values must not have been recomputed.
	assert.Equal(t, firstSecs, *e.DurationSeconds)
	assert.InDelta(t, firstGross, *e.GrossPay, 1e-9)
}

func TestTimeEntry_CloseClampsNegativeDuration(t *testing.T) {
	in := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	e := &TimeEntry{ID: "e1", ClockIn: in, PayRateAtTime: 20.00}

	require.NoError(t, e.Close(in.Add(-time.Minute)))
	assert.Equal(t, 0, *e.DurationSeconds)
	assert.InDelta(t, 0, *e.GrossPay, 1e-9)
}

func TestTimeEntry_HoursWhileOpen(t *testing.T) {
	e := &TimeEntry{ID: "e1", ClockIn: time.Now()}
	assert.Zero(t, e.Hours())
}

func TestJob_ValidateName(t *testing.T) {
	tests := []struct {
		name    string
		jobName string
		wantErr bool
	}{
		{"valid", "Day Shift – Route 220", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &Job{Name: tt.jobName}
			err := j.ValidateName()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJob_Label(t *testing.T) {
	withCode := &Job{Name: "Night Flagger – I-81", Code: "I81-NF"}
	assert.Equal(t, "Night Flagger – I-81 (I81-NF)", withCode.Label())

	noCode := &Job{Name: "Yard"}
	assert.Equal(t, "Yard", noCode.Label())
}

func TestTask_Validate(t *testing.T) {
	valid := Task{JobID: "j1", Name: "Travel time", PayRate: 18.50, PayUnit: PayUnitHour}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{"valid", func(t *Task) {}, false},
		{"zero rate allowed", func(t *Task) { t.PayRate = 0 }, false},
		{"empty name", func(t *Task) { t.Name = " " }, true},
		{"missing job", func(t *Task) { t.JobID = "" }, true},
		{"negative rate", func(t *Task) { t.PayRate = -1 }, true},
		{"unsupported pay unit", func(t *Task) { t.PayUnit = "day" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.mutate(&task)
			err := task.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
