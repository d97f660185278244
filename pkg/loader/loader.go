// Package loader decodes city trip CSVs into a models.Table, deriving the
// month, weekday, hour and station-pair columns and applying the filter.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/yuriiter/bikeshare/pkg/models"
	"github.com/yuriiter/bikeshare/pkg/sources"
	"github.com/yuriiter/bikeshare/pkg/utils"
)

// Column names in the city exports.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColDuration     = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{
	ColStartTime, ColEndTime, ColStartStation, ColEndStation, ColDuration, ColUserType,
}

var ErrMissingColumn = errors.New("missing column")

// Load opens the city's data through src and decodes it with the filter applied.
func Load(ctx context.Context, src sources.Source, f models.Filter) (*models.Table, error) {
	rc, err := src.Open(ctx, f.City)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	t, err := Decode(rc, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", f.City, err)
	}
	utils.DebugLog("Loader: %d trips for %s (month=%s, day=%s) via %s", t.Len(), f.City, f.Month, f.Day, src.Name())
	return t, nil
}

// Decode reads a full trip CSV from r and keeps the rows matching f.
func Decode(r io.Reader, f models.Filter) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty csv")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	t := &models.Table{City: f.City, Header: header}
	_, t.HasGender = idx[ColGender]
	_, t.HasBirthYear = idx[ColBirthYear]

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		trip, err := parseTrip(record, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !f.MatchesMonth(trip.Month) || !f.MatchesDay(trip.Weekday) {
			continue
		}
		t.Trips = append(t.Trips, trip)
	}
	return t, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}
	return idx, nil
}

func parseTrip(record []string, idx map[string]int) (models.Trip, error) {
	cell := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	start, err := utils.ParseTimestamp(cell(ColStartTime))
	if err != nil {
		return models.Trip{}, fmt.Errorf("start time: %w", err)
	}
	// End times are informational; a blank one does not invalidate the trip.
	end, _ := utils.ParseTimestamp(cell(ColEndTime))

	duration, err := strconv.ParseFloat(cell(ColDuration), 64)
	if err != nil {
		return models.Trip{}, fmt.Errorf("trip duration: %w", err)
	}
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return models.Trip{}, fmt.Errorf("trip duration: invalid value %q", cell(ColDuration))
	}

	startStation, endStation := cell(ColStartStation), cell(ColEndStation)
	return models.Trip{
		StartTime:    start,
		EndTime:      end,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     cell(ColUserType),
		Gender:       cell(ColGender),
		BirthYear:    cell(ColBirthYear),
		Month:        start.Month().String(),
		Weekday:      start.Weekday().String(),
		Hour:         start.Hour(),
		StationPair:  models.StationPairLabel(startStation, endStation),
		Raw:          record,
	}, nil
}
