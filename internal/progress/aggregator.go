// ABOUTME: Derives day/week summaries, streaks, and best outcomes from the tic log.
// ABOUTME: Pure reads over the Repository; nothing here is persisted.
package progress

import (
	"fmt"
	"time"

	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/harperreed/ticbuddy/internal/storage"
)

// DaySummary aggregates one calendar day's entries by outcome.
type DaySummary struct {
	Date       time.Time
	Total      int
	Redirected int
	Caught     int
	Noticed    int
	Happened   int
}

// SuccessRate is (redirected+caught)/total as an integer percentage,
// 0 when the day is empty.
func (d DaySummary) SuccessRate() int {
	if d.Total == 0 {
		return 0
	}
	return int(float64(d.Redirected+d.Caught) / float64(d.Total) * 100)
}

// WeekSummary covers the last 7 calendar days, oldest first.
type WeekSummary struct {
	Days       []DaySummary
	Total      int
	Redirected int
	Caught     int
}

// SuccessRate is the week-wide integer success percentage.
func (w WeekSummary) SuccessRate() int {
	if w.Total == 0 {
		return 0
	}
	return int(float64(w.Redirected+w.Caught) / float64(w.Total) * 100)
}

// Aggregator computes progress statistics over a Repository.
type Aggregator struct {
	repo storage.Repository
	now  func() time.Time
}

// NewAggregator creates an aggregator using the wall clock.
func NewAggregator(repo storage.Repository) *Aggregator {
	return &Aggregator{repo: repo, now: time.Now}
}

// WithClock overrides the aggregator's clock. Intended for tests.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

// Day summarizes the entries logged on the given date.
func (a *Aggregator) Day(date time.Time) (DaySummary, error) {
	entries, err := a.repo.EntriesOn(date)
	if err != nil {
		return DaySummary{}, fmt.Errorf("entries on %s: %w", date.Format("2006-01-02"), err)
	}
	return summarize(date, entries), nil
}

// Today summarizes the current day.
func (a *Aggregator) Today() (DaySummary, error) {
	return a.Day(a.now())
}

// BestOutcomeToday returns the highest-ranked outcome among today's
// entries. A tic that happened uninterrupted never counts as best; the
// second return is false when today holds nothing better.
func (a *Aggregator) BestOutcomeToday() (models.Outcome, bool, error) {
	entries, err := a.repo.EntriesOn(a.now())
	if err != nil {
		return "", false, fmt.Errorf("entries today: %w", err)
	}
	best := models.Outcome("")
	bestRank := 0
	for _, e := range entries {
		if r := e.Outcome.Rank(); r > bestRank {
			best = e.Outcome
			bestRank = r
		}
	}
	return best, bestRank > 0, nil
}

// CurrentStreak counts consecutive calendar days with at least one
// entry, walking backward from today and stopping at the first empty
// day. Future-dated entries do not extend the streak.
func (a *Aggregator) CurrentStreak() (int, error) {
	streak := 0
	check := a.now()
	for {
		entries, err := a.repo.EntriesOn(check)
		if err != nil {
			return 0, fmt.Errorf("entries on %s: %w", check.Format("2006-01-02"), err)
		}
		if len(entries) == 0 {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak, nil
}

// Week summarizes the last 7 calendar days including today, oldest
// first.
func (a *Aggregator) Week() (WeekSummary, error) {
	now := a.now()
	var week WeekSummary
	for offset := 6; offset >= 0; offset-- {
		date := now.AddDate(0, 0, -offset)
		day, err := a.Day(date)
		if err != nil {
			return WeekSummary{}, err
		}
		week.Days = append(week.Days, day)
		week.Total += day.Total
		week.Redirected += day.Redirected
		week.Caught += day.Caught
	}
	return week, nil
}

func summarize(date time.Time, entries []*models.TicEntry) DaySummary {
	d := DaySummary{Date: date, Total: len(entries)}
	for _, e := range entries {
		switch e.Outcome {
		case models.OutcomeRedirected:
			d.Redirected++
		case models.OutcomeCaught:
			d.Caught++
		case models.OutcomeNoticed:
			d.Noticed++
		case models.OutcomeHappened:
			d.Happened++
		}
	}
	return d
}
