// Package packet defines the seed packet input record.
//
// A [Packet] is what the user fills in: the seed name printed as the title,
// the packing date, free-form notes for the back panel and an optional
// background image drawn on the front panel. Hosting layers (CLI, HTTP)
// collect raw strings into an [Input] and convert it with [Input.Packet],
// which applies defaults and validates every field before rendering starts.
package packet

import (
	"strings"
	"time"

	"github.com/matzehuels/seedpacket/pkg/errors"
)

const (
	// DefaultSeedName is printed when no seed name is given.
	DefaultSeedName = "Seed Name"

	// DateLayout is the accepted input format for dates (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// shortDateLayout is the printed date format: month/day/year without padding.
	shortDateLayout = "1/2/2006"
)

// Packet is a validated seed packet request. It is immutable once built.
type Packet struct {
	SeedName        string    `json:"seedName" yaml:"seed_name"`
	Date            time.Time `json:"date" yaml:"date"`
	Notes           string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	BackgroundImage string    `json:"backgroundImage,omitempty" yaml:"background_image,omitempty"`
}

// ShortDate formats the packet date as M/D/YYYY (e.g. "5/1/2024").
func (p Packet) ShortDate() string {
	return p.Date.Format(shortDateLayout)
}

// DateLine is the full text printed below the title.
func (p Packet) DateLine() string {
	return "Date: " + p.ShortDate()
}

// NotesText is the text block printed on the back panel, or "" when there are
// no notes.
func (p Packet) NotesText() string {
	if p.Notes == "" {
		return ""
	}
	return "Notes: " + p.Notes
}

// HasImage reports whether a background image was requested.
func (p Packet) HasImage() bool {
	return p.BackgroundImage != ""
}

// Validate checks every field. A zero date is rejected; use [Input.Packet]
// to get the current-date default.
func (p Packet) Validate() error {
	if err := errors.ValidateSeedName(p.SeedName); err != nil {
		return err
	}
	if p.Date.IsZero() {
		return errors.New(errors.ErrCodeInvalidDate, "date is required")
	}
	if err := errors.ValidateNotes(p.Notes); err != nil {
		return err
	}
	if p.BackgroundImage != "" {
		if err := errors.ValidateImageRef(p.BackgroundImage); err != nil {
			return err
		}
	}
	return nil
}

// Input holds the raw, unvalidated fields as submitted by a user.
type Input struct {
	SeedName        string `json:"seedName" yaml:"seed_name"`
	Date            string `json:"date" yaml:"date"`
	Notes           string `json:"notes" yaml:"notes"`
	BackgroundImage string `json:"backgroundImage" yaml:"background_image"`
}

// Packet converts the input into a validated Packet. An empty seed name
// becomes [DefaultSeedName] and an empty date becomes the calendar date of now.
func (in Input) Packet(now time.Time) (Packet, error) {
	p := Packet{
		SeedName:        strings.TrimSpace(in.SeedName),
		Notes:           strings.TrimRight(in.Notes, " \t\r\n"),
		BackgroundImage: strings.TrimSpace(in.BackgroundImage),
	}
	if p.SeedName == "" {
		p.SeedName = DefaultSeedName
	}

	date, err := ParseDate(in.Date, now)
	if err != nil {
		return Packet{}, err
	}
	p.Date = date

	if err := p.Validate(); err != nil {
		return Packet{}, err
	}
	return p, nil
}

// ParseDate parses a YYYY-MM-DD date in now's location. An empty string
// yields the calendar date of now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Today(now), nil
	}
	t, err := time.ParseInLocation(DateLayout, s, now.Location())
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "date %q must be YYYY-MM-DD", s)
	}
	return t, nil
}

// Today truncates now to midnight in its own location.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
