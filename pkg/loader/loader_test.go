package loader

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuriiter/bikeshare/pkg/models"
	"github.com/yuriiter/bikeshare/pkg/sources"
)

func testSource() *sources.FileSource {
	return &sources.FileSource{Dir: "testdata", Cities: map[string]string{
		"chicago":    "chicago.csv",
		"washington": "washington.csv",
	}}
}

func all(city string) models.Filter {
	return models.Filter{City: city, Month: models.All, Day: models.All}
}

func TestLoad_Chicago(t *testing.T) {
	tbl, err := Load(context.Background(), testSource(), all("chicago"))
	require.NoError(t, err)

	assert.Equal(t, "chicago", tbl.City)
	assert.Equal(t, 10, tbl.Len())
	assert.True(t, tbl.HasGender)
	assert.True(t, tbl.HasBirthYear)
	assert.Len(t, tbl.Header, 9)

	first := tbl.Trips[0]
	assert.Equal(t, "Wood St & Hubbard St", first.StartStation)
	assert.Equal(t, "Damen Ave & Chicago Ave", first.EndStation)
	assert.Equal(t, 321.0, first.Duration)
	assert.Equal(t, "Subscriber", first.UserType)
	assert.Equal(t, "Male", first.Gender)
	assert.Equal(t, "1992.0", first.BirthYear)
	assert.Equal(t, "June", first.Month)
	assert.Equal(t, "Friday", first.Weekday)
	assert.Equal(t, 15, first.Hour)
	assert.Equal(t, "Starting station: Wood St & Hubbard St, Ending station: Damen Ave & Chicago Ave", first.StationPair)
	assert.Equal(t, "1423854", first.Raw[0])
	assert.Equal(t, 15, first.EndTime.Hour())
	assert.Equal(t, 14, first.EndTime.Minute())
}

func TestLoad_WashingtonHasNoDemographics(t *testing.T) {
	tbl, err := Load(context.Background(), testSource(), all("washington"))
	require.NoError(t, err)

	assert.Equal(t, 5, tbl.Len())
	assert.False(t, tbl.HasGender)
	assert.False(t, tbl.HasBirthYear)
	assert.InDelta(t, 489.066, tbl.Trips[0].Duration, 1e-9)
	for _, trip := range tbl.Trips {
		assert.Empty(t, trip.Gender)
		assert.Empty(t, trip.BirthYear)
	}
}

func TestLoad_ReturnsOnlyRequestedCity(t *testing.T) {
	chi, err := Load(context.Background(), testSource(), all("chicago"))
	require.NoError(t, err)
	was, err := Load(context.Background(), testSource(), all("washington"))
	require.NoError(t, err)

	chiStations := map[string]bool{}
	for _, trip := range chi.Trips {
		chiStations[trip.StartStation] = true
	}
	for _, trip := range was.Trips {
		assert.False(t, chiStations[trip.StartStation], "washington trip from chicago station %q", trip.StartStation)
	}
}

func TestLoad_Filters(t *testing.T) {
	tests := []struct {
		name  string
		month string
		day   string
		want  int
	}{
		{"no filter", models.All, models.All, 10},
		{"january", "january", models.All, 3},
		{"monday", models.All, "monday", 3},
		{"june mondays", "june", "monday", 1},
		{"mixed case", "May", "FRIDAY", 1},
		{"no matches", "march", "sunday", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := models.Filter{City: "chicago", Month: tt.month, Day: tt.day}
			tbl, err := Load(context.Background(), testSource(), f)
			require.NoError(t, err)
			require.Equal(t, tt.want, tbl.Len())
			for _, trip := range tbl.Trips {
				if tt.month != models.All {
					assert.True(t, strings.EqualFold(tt.month, trip.Month), "month %s", trip.Month)
				}
				if tt.day != models.All {
					assert.True(t, strings.EqualFold(tt.day, trip.Weekday), "day %s", trip.Weekday)
				}
			}
		})
	}
}

func TestLoad_DoesNotModifySource(t *testing.T) {
	before, err := os.ReadFile("testdata/chicago.csv")
	require.NoError(t, err)

	_, err = Load(context.Background(), testSource(), models.Filter{City: "chicago", Month: "june", Day: "monday"})
	require.NoError(t, err)

	after, err := os.ReadFile("testdata/chicago.csv")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoad_UnknownCity(t *testing.T) {
	_, err := Load(context.Background(), testSource(), all("gotham"))
	assert.ErrorIs(t, err, sources.ErrUnknownCity)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "empty csv"},
		{
			"missing column",
			"Start Time,End Time,Trip Duration,Start Station,End Station\n",
			`missing column "User Type"`,
		},
		{
			"bad start time",
			"Start Time,End Time,Trip Duration,Start Station,End Station,User Type\nsoon,,10,A,B,Customer\n",
			"line 2: start time",
		},
		{
			"bad duration",
			"Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n2017-01-01 00:00:00,,long,A,B,Customer\n",
			"line 2: trip duration",
		},
		{
			"negative duration",
			"Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n2017-01-01 00:00:00,,-90,A,B,Customer\n",
			"line 2: trip duration: invalid value \"-90\"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), all("x"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecode_MissingColumnSentinel(t *testing.T) {
	_, err := Decode(strings.NewReader("Start Time\n"), all("x"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestDecode_ShortRowsAndBOM(t *testing.T) {
	input := "\ufeffStart Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender\n" +
		"2017-02-01 07:30:00,2017-02-01 07:40:00,600,A,B,Subscriber\n"
	tbl, err := Decode(strings.NewReader(input), all("x"))
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.True(t, tbl.HasGender)
	assert.Empty(t, tbl.Trips[0].Gender)
	assert.Equal(t, "Wednesday", tbl.Trips[0].Weekday)
	assert.Equal(t, 7, tbl.Trips[0].Hour)
}
