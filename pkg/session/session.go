// Package session runs the interactive loop: choose filters, load the city
// table, print the four reports, page through raw rows, offer a restart.
package session

import (
	"context"
	"errors"
	"io"

	"github.com/yuriiter/bikeshare/pkg/display"
	"github.com/yuriiter/bikeshare/pkg/loader"
	"github.com/yuriiter/bikeshare/pkg/models"
	"github.com/yuriiter/bikeshare/pkg/prompt"
	"github.com/yuriiter/bikeshare/pkg/sources"
	"github.com/yuriiter/bikeshare/pkg/stats"
	"github.com/yuriiter/bikeshare/pkg/utils"
)

type Session struct {
	Source   sources.Source
	Prompter *prompt.Prompter
	Renderer *display.Renderer
	PageSize int
}

func New(src sources.Source, in io.Reader, out io.Writer, cities []string, pageSize int) *Session {
	return &Session{
		Source:   src,
		Prompter: prompt.New(in, out, cities),
		Renderer: display.NewRenderer(out),
		PageSize: pageSize,
	}
}

// Run loops until the user declines to restart, input ends or ctx is
// cancelled. All three are normal exits and return nil.
func (s *Session) Run(ctx context.Context) error {
	for {
		again, err := s.iteration(ctx)
		if errors.Is(err, prompt.ErrInputClosed) {
			utils.DebugLog("Session: input closed")
			return nil
		}
		if errors.Is(err, context.Canceled) {
			utils.DebugLog("Session: interrupted")
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) iteration(ctx context.Context) (bool, error) {
	f, err := s.Prompter.SelectFilter(ctx)
	if err != nil {
		return false, err
	}

	t, err := loader.Load(ctx, s.Source, f)
	if err != nil {
		return false, err
	}

	s.report(t)

	if err := s.Prompter.Paginate(ctx, t, s.PageSize, func(page []models.Trip, offset int) {
		s.Renderer.Rows(t.Header, page, offset)
	}); err != nil {
		return false, err
	}

	return s.Prompter.YesNo(ctx, "\nWould you like to restart? Enter yes or no.")
}

func (s *Session) report(t *models.Table) {
	r := s.Renderer
	r.Section("Calculating The Most Frequent Times of Travel...", func() {
		r.Time(stats.TimeStats(t))
	})
	r.Section("Calculating The Most Popular Stations and Trip...", func() {
		r.Stations(stats.StationStats(t))
	})
	r.Section("Calculating Trip Duration...", func() {
		r.Durations(stats.DurationStats(t))
	})
	r.Section("Calculating User Stats...", func() {
		r.Users(stats.UserStats(t))
	})
}
