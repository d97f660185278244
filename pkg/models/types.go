package models

import (
	"slices"
	"strings"
	"time"
)

// All means "no filter" for month and day selections.
const All = "all"

var Months = []string{"january", "february", "march", "april", "may", "june"}

var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type Filter struct {
	City  string
	Month string
	Day   string
}

// MatchesMonth reports whether the month name passes the filter.
func (f Filter) MatchesMonth(month string) bool {
	return f.Month == "" || f.Month == All || strings.EqualFold(f.Month, month)
}

// MatchesDay reports whether the weekday name passes the filter.
func (f Filter) MatchesDay(day string) bool {
	return f.Day == "" || f.Day == All || strings.EqualFold(f.Day, day)
}

type Trip struct {
	StartTime    time.Time
	EndTime      time.Time
	StartStation string
	EndStation   string
	Duration     float64
	UserType     string
	Gender       string
	BirthYear    string

	// Derived once at load time.
	Month       string
	Weekday     string
	Hour        int
	StationPair string

	// Raw cells in header order.
	Raw []string
}

type Table struct {
	City         string
	Header       []string
	Trips        []Trip
	HasGender    bool
	HasBirthYear bool
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Trips)
}

// StationPairLabel builds the combined label used for popular trip stats.
func StationPairLabel(start, end string) string {
	return "Starting station: " + start + ", Ending station: " + end
}

// IsMonth reports whether name is one of the selectable months.
func IsMonth(name string) bool {
	return slices.Contains(Months, name)
}

// IsDay reports whether name is one of the weekday names.
func IsDay(name string) bool {
	return slices.Contains(Days, name)
}
