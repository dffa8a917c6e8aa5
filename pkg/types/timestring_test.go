package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid afternoon", input: "16:30", want: "16:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "10:61", wantErr: true},
		{name: "with seconds", input: "10:30:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 10, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("10:30").Validate())
	assert.ErrorIs(t, TimeString("10:75").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("10:30"))
	assert.False(t, TimeString("12:00").IsBefore("10:30"))

	assert.True(t, TimeString("12:00").IsAfter("10:30"))
	assert.False(t, TimeString("10:30").IsAfter("10:30"))

	// Invalid values compare as neither before nor after
	assert.False(t, TimeString("bad").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsAfter("bad"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	_, err = TimeString("23:30").AddMinutes(45)
	require.Error(t, err)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
