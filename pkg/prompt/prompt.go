// Package prompt implements the interactive console questions: filter
// selection, yes/no confirmations and the raw data paginator.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/yuriiter/bikeshare/pkg/models"
)

// ErrInputClosed is returned when input ends before a valid answer is read.
var ErrInputClosed = errors.New("input closed")

type Prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	cities []string

	start   sync.Once
	lines   chan string
	readErr error // Set before lines is closed.
}

// New returns a Prompter reading answers from in and writing questions to
// out. cities are the accepted lower-case city names, in display order.
func New(in io.Reader, out io.Writer, cities []string) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, cities: cities, lines: make(chan string)}
}

func (p *Prompter) println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// readLines feeds scanned lines to ask so a blocked read never holds up
// cancellation. It exits when input ends.
func (p *Prompter) readLines() {
	defer close(p.lines)
	for p.in.Scan() {
		p.lines <- p.in.Text()
	}
	p.readErr = p.in.Err()
}

// ask prints question and returns the next answer, trimmed and lower-cased.
// It returns ctx.Err() if ctx is done first.
func (p *Prompter) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.println(question)
	p.start.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case text, ok := <-p.lines:
		if !ok {
			if p.readErr != nil {
				return "", fmt.Errorf("read answer: %w", p.readErr)
			}
			return "", ErrInputClosed
		}
		return strings.ToLower(strings.TrimSpace(text)), nil
	}
}

// choose asks question until the answer satisfies valid, printing retry
// after each rejected answer.
func (p *Prompter) choose(ctx context.Context, question string, valid func(string) bool, retry func(string) string) (string, error) {
	for {
		answer, err := p.ask(ctx, question)
		if err != nil {
			return "", err
		}
		if valid(answer) {
			return answer, nil
		}
		p.println(retry(answer))
	}
}

func constant(msg string) func(string) string {
	return func(string) string { return msg }
}

// SelectFilter asks for a city and the optional month and day filters.
func (p *Prompter) SelectFilter(ctx context.Context) (models.Filter, error) {
	p.println("Hello! Let's explore some US bikeshare data!")

	f := models.Filter{Month: models.All, Day: models.All}
	var err error

	question := fmt.Sprintf("Which city would you like to see data for? %s? Please type the city name as shown here.", listOr(p.cities))
	f.City, err = p.choose(ctx, question,
		func(s string) bool { return slices.Contains(p.cities, s) },
		constant("Sorry I couldn't find that city in the list, please try again."))
	if err != nil {
		return f, err
	}
	p.println(fmt.Sprintf("Looks like you want to know about %s! If that's not the case, please exit or restart the program now.\n", titleCase(f.City)))

	kind, err := p.choose(ctx, "Would you like to filter the data by month, day, both, or nothing at all? Type 'none' for no time filters.",
		func(s string) bool { return s == "month" || s == "day" || s == "both" || s == "none" },
		constant("Sorry I couldn't understand that, please try again."))
	if err != nil {
		return f, err
	}

	if kind == "month" || kind == "both" {
		f.Month, err = p.choose(ctx,
			fmt.Sprintf("Which month? %s? Please type out the full name of the month.", listOr(models.Months)),
			models.IsMonth,
			constant("Sorry, that month either doesn't exist, or we have no data available for it."))
		if err != nil {
			return f, err
		}
	}

	if kind == "day" || kind == "both" {
		f.Day, err = p.choose(ctx,
			fmt.Sprintf("Which day of the week? %s? Please type out the full name of the day.", listOr(models.Days)),
			models.IsDay,
			constant("Sorry I couldn't understand that, please try again."))
		if err != nil {
			return f, err
		}
	}

	p.println(strings.Repeat("-", 40))
	return f, nil
}

// YesNo asks message until the answer is "yes" or "no".
func (p *Prompter) YesNo(ctx context.Context, message string) (bool, error) {
	answer, err := p.choose(ctx, message,
		func(s string) bool { return s == "yes" || s == "no" },
		func(s string) string { return fmt.Sprintf("Invalid choice (%s). Please try again", s) })
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// listOr renders names as "A, B, or C".
func listOr(names []string) string {
	titled := make([]string, len(names))
	for i, n := range names {
		titled[i] = titleCase(n)
	}
	switch len(titled) {
	case 0:
		return ""
	case 1:
		return titled[0]
	case 2:
		return titled[0] + " or " + titled[1]
	}
	return strings.Join(titled[:len(titled)-1], ", ") + ", or " + titled[len(titled)-1]
}
