package prompt

import (
	"context"
	"fmt"

	"github.com/yuriiter/bikeshare/pkg/models"
)

// Paginate offers the table's trips pageSize at a time. show receives each
// page and the index of its first trip. It stops when the user answers "no"
// or the trips run out.
func (p *Prompter) Paginate(ctx context.Context, t *models.Table, pageSize int, show func(page []models.Trip, offset int)) error {
	if pageSize < 1 {
		pageSize = 5
	}
	more, err := p.YesNo(ctx, "Would you like to see the raw data? yes/no")
	if err != nil {
		return err
	}

	next := fmt.Sprintf("Would you like to see %d more rows of the raw data? yes/no", pageSize)
	for offset := 0; more && offset < t.Len(); offset += pageSize {
		end := min(offset+pageSize, t.Len())
		show(t.Trips[offset:end], offset)
		if end == t.Len() {
			break
		}
		if more, err = p.YesNo(ctx, next); err != nil {
			return err
		}
	}
	return nil
}
