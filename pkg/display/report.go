package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/yuriiter/bikeshare/pkg/models"
	"github.com/yuriiter/bikeshare/pkg/stats"
)

// Separator closes every section of output.
var Separator = strings.Repeat("-", 40)

const noTrips = "No trips match the selected filters."

// Renderer writes report sections to an output stream.
type Renderer struct {
	out io.Writer
	now func() time.Time
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, now: time.Now}
}

func (r *Renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Section prints title, runs body, then reports how long body took.
func (r *Renderer) Section(title string, body func()) {
	r.printf("\n%s%s%s\n\n", Cyan, title, NC)
	start := r.now()
	body()
	r.printf("\nThis took %s seconds.\n%s\n", FormatSeconds(r.now().Sub(start).Seconds()), Separator)
}

func (r *Renderer) Time(rep stats.TimeReport) {
	if rep.Empty {
		r.printf("%s\n", noTrips)
		return
	}
	r.printf("Most common month: %s\n", rep.Month)
	r.printf("Most common day of the week: %s\n", rep.Weekday)
	r.printf("Most common start hour: %d\n", rep.Hour)
}

func (r *Renderer) Stations(rep stats.StationReport) {
	if rep.Empty {
		r.printf("%s\n", noTrips)
		return
	}
	r.printf("Most popular starting station: %s\n", rep.StartStation)
	r.printf("Most popular ending station: %s\n", rep.EndStation)
	r.printf("Most popular trip (starting and ending stations):\n%s\n", rep.Trip)
}

func (r *Renderer) Durations(rep stats.DurationReport) {
	if rep.Empty {
		r.printf("%s\n", noTrips)
		return
	}
	r.printf("Total travel time: %s\n", FormatElapsed(rep.Total))
	r.printf("Mean travel time for a trip: %s\n", FormatElapsed(rep.Mean))
	r.printf("Trips counted: %d\n", rep.Trips)
}

func (r *Renderer) Users(rep stats.UserReport) {
	if rep.Empty {
		r.printf("%s\n", noTrips)
		return
	}
	r.printf("User type breakdown:\n")
	r.counts(rep.UserTypes)
	r.printf("\n")

	if rep.HasGender {
		r.printf("User gender breakdown:\n")
		r.counts(rep.Genders)
	} else {
		r.printf("No gender data to share.\n")
	}
	r.printf("\n")

	if rep.HasBirthYear {
		r.printf("Oldest birth year: %d\n", rep.EarliestBirthYear)
		r.printf("Youngest birth year: %d\n", rep.LatestBirthYear)
		r.printf("Most common birth year: %d\n", rep.CommonBirthYear)
	} else {
		r.printf("No birth year data to share.\n")
	}
}

func (r *Renderer) counts(counts []stats.Count[string]) {
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		_, _ = fmt.Fprintf(tw, "  %s\t%d\n", c.Value, c.N)
	}
	_ = tw.Flush()
}

// Rows prints trips as a table of their raw cells under header. Each row is
// prefixed with its position in the filtered table, starting at offset.
func (r *Renderer) Rows(header []string, trips []models.Trip, offset int) {
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "#\t%s\n", strings.Join(header, "\t"))
	for i, trip := range trips {
		_, _ = fmt.Fprintf(tw, "%d\t%s\n", offset+i, strings.Join(trip.Raw, "\t"))
	}
	_ = tw.Flush()
}
