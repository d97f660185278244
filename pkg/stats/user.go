package stats

import (
	"math"
	"strconv"

	"github.com/yuriiter/bikeshare/pkg/models"
)

// UserReport holds user type and demographic breakdowns. HasGender and
// HasBirthYear are false when the city has no such data, either because the
// column is absent or because every cell in the selection is blank.
type UserReport struct {
	Empty     bool
	UserTypes []Count[string]

	HasGender bool
	Genders   []Count[string]

	HasBirthYear      bool
	EarliestBirthYear int
	LatestBirthYear   int
	CommonBirthYear   int
}

func UserStats(t *models.Table) UserReport {
	if t.Len() == 0 {
		return UserReport{Empty: true}
	}
	r := UserReport{
		UserTypes: CountValues(nonBlank(column(t, func(tr *models.Trip) string { return tr.UserType }))),
	}

	if t.HasGender {
		r.Genders = CountValues(nonBlank(column(t, func(tr *models.Trip) string { return tr.Gender })))
		r.HasGender = len(r.Genders) > 0
	}

	if t.HasBirthYear {
		years := birthYears(t)
		if len(years) > 0 {
			r.HasBirthYear = true
			r.EarliestBirthYear, r.LatestBirthYear = years[0], years[0]
			for _, y := range years[1:] {
				r.EarliestBirthYear = min(r.EarliestBirthYear, y)
				r.LatestBirthYear = max(r.LatestBirthYear, y)
			}
			r.CommonBirthYear, _ = Mode(years)
		}
	}
	return r
}

// birthYears parses the birth year cells, which the exports store as floats
// ("1992.0"). Blank or malformed cells are skipped.
func birthYears(t *models.Table) []int {
	var years []int
	for i := range t.Trips {
		s := t.Trips[i].BirthYear
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		years = append(years, int(f))
	}
	return years
}
