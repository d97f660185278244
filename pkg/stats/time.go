package stats

import "github.com/yuriiter/bikeshare/pkg/models"

// TimeReport holds the most frequent times of travel.
type TimeReport struct {
	Empty   bool
	Month   string
	Weekday string
	Hour    int
}

func TimeStats(t *models.Table) TimeReport {
	if t.Len() == 0 {
		return TimeReport{Empty: true}
	}
	month, _ := Mode(column(t, func(tr *models.Trip) string { return tr.Month }))
	day, _ := Mode(column(t, func(tr *models.Trip) string { return tr.Weekday }))
	hour, _ := Mode(column(t, func(tr *models.Trip) int { return tr.Hour }))
	return TimeReport{Month: month, Weekday: day, Hour: hour}
}
