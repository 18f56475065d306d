package theater

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedule(t *testing.T) {
	schedule := DefaultSchedule(testDay)

	require.Len(t, schedule, 9)
	for i, s := range schedule {
		assert.Equal(t, i+1, s.SequenceOfDay, "slot %d", i)
		assert.Equal(t, testDay.Day(), s.StartTime.Day())
	}
	assert.Equal(t, "Turning Red", schedule[0].Movie.Title)
	assert.Same(t, schedule[1].Movie, schedule[4].Movie, "showings share one movie record")
}

func TestLoadSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	content := `{
	  "movies": [
	    {"title": "Clueless", "description": "Staple romcom from the 90's", "running_time_minutes": 80, "ticket_price": "20", "special_code": 1}
	  ],
	  "showings": [
	    {"movie": "Clueless", "sequence": 1, "start": "09:30"},
	    {"movie": "Clueless", "sequence": 2, "start": "15:00"}
	  ]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	schedule, err := LoadSchedule(path, testDay)
	require.NoError(t, err)
	require.Len(t, schedule, 2)

	assert.Equal(t, 1, schedule[0].SequenceOfDay)
	assert.True(t, decimal.NewFromInt(20).Equal(schedule[0].Movie.TicketPrice))
	assert.Equal(t, time.Date(2022, 3, 20, 15, 0, 0, 0, time.UTC), schedule[1].StartTime)
	assert.Same(t, schedule[0].Movie, schedule[1].Movie)
}

func TestLoadScheduleErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSchedule(filepath.Join(t.TempDir(), "nope.json"), testDay)
		assert.Error(t, err)
	})

	t.Run("unknown movie reference", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schedule.json")
		content := `{"movies": [], "showings": [{"movie": "Ghost", "sequence": 1, "start": "09:00"}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := LoadSchedule(path, testDay)
		assert.ErrorContains(t, err, "unknown movie")
	})

	t.Run("bad start time", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schedule.json")
		content := `{"movies": [{"title": "Ghost", "ticket_price": "10"}], "showings": [{"movie": "Ghost", "sequence": 1, "start": "late"}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := LoadSchedule(path, testDay)
		assert.ErrorContains(t, err, "invalid start")
	})
}
