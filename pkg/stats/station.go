package stats

import "github.com/yuriiter/bikeshare/pkg/models"

// StationReport holds the most popular stations and station pair.
type StationReport struct {
	Empty        bool
	StartStation string
	EndStation   string
	Trip         string
}

func StationStats(t *models.Table) StationReport {
	if t.Len() == 0 {
		return StationReport{Empty: true}
	}
	start, _ := Mode(column(t, func(tr *models.Trip) string { return tr.StartStation }))
	end, _ := Mode(column(t, func(tr *models.Trip) string { return tr.EndStation }))
	pair, _ := Mode(column(t, func(tr *models.Trip) string { return tr.StationPair }))
	return StationReport{StartStation: start, EndStation: end, Trip: pair}
}
