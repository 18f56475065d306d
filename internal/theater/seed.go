package theater

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nmartinas/theater-box-office/internal/model"
)

// DefaultSchedule is the stock single-day programme: three movies rotating
// across nine slots. Start times are placed on date's calendar day in date's
// location.
func DefaultSchedule(date time.Time) []*model.Showing {
	spiderMan := model.NewMovie("Spider-Man: No Way Home", "Spider-Man movie description.", 90*time.Minute, decimal.NewFromFloat(12.5), 1)
	turningRed := model.NewMovie("Turning Red", "This is a Disney movie.", 85*time.Minute, decimal.NewFromInt(11), 0)
	theBatman := model.NewMovie("The Batman", "This is a DC Comics movie", 95*time.Minute, decimal.NewFromInt(9), 0)

	at := func(hour, min int) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), hour, min, 0, 0, date.Location())
	}

	return []*model.Showing{
		model.NewShowing(turningRed, 1, at(9, 0)),
		model.NewShowing(spiderMan, 2, at(11, 0)),
		model.NewShowing(theBatman, 3, at(12, 50)),
		model.NewShowing(turningRed, 4, at(14, 30)),
		model.NewShowing(spiderMan, 5, at(16, 10)),
		model.NewShowing(theBatman, 6, at(17, 50)),
		model.NewShowing(turningRed, 7, at(19, 30)),
		model.NewShowing(spiderMan, 8, at(21, 10)),
		model.NewShowing(theBatman, 9, at(23, 0)),
	}
}

// scheduleFile is the on-disk layout accepted by LoadSchedule. Showings refer
// to movies by title; starts are clock times placed on the day being built.
type scheduleFile struct {
	Movies []struct {
		Title              string          `json:"title"`
		Description        string          `json:"description"`
		RunningTimeMinutes int64           `json:"running_time_minutes"`
		TicketPrice        decimal.Decimal `json:"ticket_price"`
		SpecialCode        int             `json:"special_code"`
	} `json:"movies"`
	Showings []struct {
		Movie    string `json:"movie"`
		Sequence int    `json:"sequence"`
		Start    string `json:"start"` // "15:04"
	} `json:"showings"`
}

// LoadSchedule reads a day's programme from a JSON file and materialises it
// on date's calendar day.
func LoadSchedule(path string, date time.Time) ([]*model.Showing, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule file: %w", err)
	}
	var file scheduleFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse schedule file: %w", err)
	}

	movies := make(map[string]*model.Movie, len(file.Movies))
	for _, m := range file.Movies {
		movies[m.Title] = model.NewMovie(m.Title, m.Description, time.Duration(m.RunningTimeMinutes)*time.Minute, m.TicketPrice, m.SpecialCode)
	}

	schedule := make([]*model.Showing, 0, len(file.Showings))
	for _, s := range file.Showings {
		movie, ok := movies[s.Movie]
		if !ok {
			return nil, fmt.Errorf("schedule file: showing %d refers to unknown movie %q", s.Sequence, s.Movie)
		}
		start, err := time.Parse("15:04", s.Start)
		if err != nil {
			return nil, fmt.Errorf("schedule file: showing %d has invalid start %q: %w", s.Sequence, s.Start, err)
		}
		schedule = append(schedule, model.NewShowing(movie, s.Sequence,
			time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), 0, 0, date.Location())))
	}
	return schedule, nil
}
