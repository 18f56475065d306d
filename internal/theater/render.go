package theater

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

const scheduleRule = "==================================================="

// movieView is the JSON shape of a movie inside the schedule document.
type movieView struct {
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	RunningTimeMinutes int64       `json:"runningTimeMinutes"`
	TicketPrice        json.Number `json:"ticketPrice"`
	SpecialCode        int         `json:"specialCode"`
}

// showingView embeds the resolved final price next to the raw showing fields.
type showingView struct {
	Movie             movieView   `json:"movie"`
	SequenceOfDay     int         `json:"sequenceOfDay"`
	StartTime         string      `json:"startTime"`
	FinalShowingPrice json.Number `json:"finalShowingPrice"`
}

// WriteSchedule prints the day's schedule as text, one line per showing:
//
//	1: 2022-03-20T09:00 Turning Red (1 hour 25 minutes) $11
//
// An empty schedule prints a single notice line instead.
func (t *Theater) WriteSchedule(w io.Writer) error {
	if len(t.schedule) == 0 {
		_, err := fmt.Fprintln(w, "No shows scheduled.")
		return err
	}

	var b strings.Builder
	b.WriteString(t.now().Format("2006-01-02"))
	b.WriteByte('\n')
	b.WriteString(scheduleRule)
	b.WriteByte('\n')
	for _, s := range t.schedule {
		fmt.Fprintf(&b, "%d: %s %s %s $%s\n",
			s.SequenceOfDay,
			s.StartTime.Format("2006-01-02T15:04"),
			s.Movie.Title,
			formatRunningTime(s.Movie.RunningTime),
			s.Movie.TicketPrice,
		)
	}
	b.WriteString(scheduleRule)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// ScheduleJSON renders the schedule as a JSON object keyed by the current
// date, each showing carrying its two-decimal finalShowingPrice.
func (t *Theater) ScheduleJSON() ([]byte, error) {
	now := t.now()
	views := make([]showingView, 0, len(t.schedule))
	for _, s := range t.schedule {
		price, err := s.FinalPrice(now)
		if err != nil {
			return nil, fmt.Errorf("render showing %d: %w", s.SequenceOfDay, err)
		}
		views = append(views, showingView{
			Movie: movieView{
				Title:              s.Movie.Title,
				Description:        s.Movie.Description,
				RunningTimeMinutes: int64(s.Movie.RunningTime.Minutes()),
				TicketPrice:        json.Number(s.Movie.TicketPrice.String()),
				SpecialCode:        s.Movie.SpecialCode,
			},
			SequenceOfDay:     s.SequenceOfDay,
			StartTime:         s.StartTime.Format(time.RFC3339),
			FinalShowingPrice: json.Number(price.StringFixed(2)),
		})
	}
	return json.Marshal(map[string][]showingView{now.Format("2006-01-02"): views})
}

// formatRunningTime renders a duration as "(1 hour 25 minutes)". The trailing
// "s" is dropped only when the magnitude is exactly 1.
func formatRunningTime(d time.Duration) string {
	hours := int64(d.Hours())
	minutes := int64(d.Minutes()) - hours*60
	return fmt.Sprintf("(%d hour%s %d minute%s)", hours, plural(hours), minutes, plural(minutes))
}

func plural(v int64) string {
	if v == 1 {
		return ""
	}
	return "s"
}
