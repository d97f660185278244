package stats

import "github.com/yuriiter/bikeshare/pkg/models"

// DurationReport holds total and mean trip duration in seconds.
type DurationReport struct {
	Empty bool
	Trips int
	Total float64
	Mean  float64
}

func DurationStats(t *models.Table) DurationReport {
	n := t.Len()
	if n == 0 {
		return DurationReport{Empty: true}
	}
	var total float64
	for i := range t.Trips {
		total += t.Trips[i].Duration
	}
	return DurationReport{Trips: n, Total: total, Mean: total / float64(n)}
}
