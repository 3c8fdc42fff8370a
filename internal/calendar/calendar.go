package calendar

import (
	"fmt"
	"time"
)

// GridSize is the fixed cell count of a month view: 6 rows of 7 days.
const GridSize = 42

// Day is one cell of the month grid shown in the appointments step.
// Leading cells borrow day numbers from the previous month, trailing
// cells are filler; only current-month, non-past days are selectable.
type Day struct {
	Day            int
	IsCurrentMonth bool
	IsPrevMonth    bool
	DateString     string
	IsToday        bool
	IsPast         bool
	IsSelectable   bool
}

// Grid produces the 42-cell grid for the given month. The week starts
// on Monday. "today" is passed in rather than read from the clock so the
// output is fully determined by its inputs; its time of day is ignored.
func Grid(month time.Month, year int, today time.Time) []Day {
	loc := today.Location()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	leading := mondayIndex(first.Weekday())

	prevMonth, prevYear := Previous(month, year)
	prevDays := DaysInMonth(prevMonth, prevYear)

	grid := make([]Day, 0, GridSize)
	for i := 0; i < leading; i++ {
		grid = append(grid, Day{
			Day:         prevDays - leading + i + 1,
			IsPrevMonth: true,
		})
	}

	for d := 1; d <= DaysInMonth(month, year); d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		isPast := date.Before(todayDate)
		grid = append(grid, Day{
			Day:            d,
			IsCurrentMonth: true,
			DateString:     fmt.Sprintf("%d. %s %d", d, month.String(), year),
			IsToday:        date.Equal(todayDate),
			IsPast:         isPast,
			IsSelectable:   !isPast,
		})
	}

	for d := 1; len(grid) < GridSize; d++ {
		grid = append(grid, Day{Day: d})
	}
	return grid
}

// DaysInMonth returns the day count of the given calendar month.
func DaysInMonth(month time.Month, year int) int {
	// Day 0 of the following month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Next advances one month, wrapping December into January of the next year.
func Next(month time.Month, year int) (time.Month, int) {
	if month == time.December {
		return time.January, year + 1
	}
	return month + 1, year
}

// Previous steps one month back, wrapping January into December of the
// previous year.
func Previous(month time.Month, year int) (time.Month, int) {
	if month == time.January {
		return time.December, year - 1
	}
	return month - 1, year
}

// mondayIndex remaps Go's Sunday-based weekday so Monday is column 0.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
