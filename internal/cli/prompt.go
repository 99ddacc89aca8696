package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	apperrors "github.com/matzehuels/seedpacket/pkg/errors"
	"github.com/matzehuels/seedpacket/pkg/packet"
)

// errAborted is returned when the user interrupts a prompt.
var errAborted = errors.New("aborted")

// noImage is the select option for rendering without a background image.
const noImage = "(none)"

// prompter asks for packet fields one at a time. The survey implementation
// talks to the terminal; tests substitute a scripted one.
type prompter interface {
	Input(ctx context.Context, message, def string, validate func(string) error) (string, error)
	TextArea(ctx context.Context, message, def string) (string, error)
	Select(ctx context.Context, message string, options []string, def string) (string, error)
}

// promptPacket asks for every packet field, using in as defaults.
// images are the names offered for the background; when empty the background
// prompt is skipped.
func promptPacket(ctx context.Context, p prompter, in packet.Input, images []string) (packet.Input, error) {
	var err error

	in.SeedName, err = p.Input(ctx, "Seed name", defaultString(in.SeedName, packet.DefaultSeedName), apperrors.ValidateSeedName)
	if err != nil {
		return in, err
	}

	in.Date, err = p.Input(ctx, "Date (YYYY-MM-DD)", in.Date, validateDate)
	if err != nil {
		return in, err
	}

	in.Notes, err = p.TextArea(ctx, "Notes", in.Notes)
	if err != nil {
		return in, err
	}
	if err := apperrors.ValidateNotes(in.Notes); err != nil {
		return in, err
	}

	if len(images) == 0 {
		return in, nil
	}
	options := append([]string{noImage}, images...)
	choice, err := p.Select(ctx, "Background image", options, defaultString(in.BackgroundImage, noImage))
	if err != nil {
		return in, err
	}
	in.BackgroundImage = ""
	if choice != noImage {
		in.BackgroundImage = choice
	}
	return in, nil
}

// validateDate accepts an empty string (today) or a YYYY-MM-DD date.
func validateDate(s string) error {
	if s == "" {
		return nil
	}
	_, err := packet.ParseDate(s, timeNow())
	return err
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// =============================================================================
// survey implementation
// =============================================================================

type surveyPrompter struct{}

func newSurveyPrompter() prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Input(ctx context.Context, message, def string, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{Message: message, Default: def}
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(stringValidator(validate)))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) TextArea(ctx context.Context, message, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(ctx context.Context, message string, options []string, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Select{Message: message, Options: options, PageSize: 12}
	for _, o := range options {
		if o == def {
			prompt.Default = def
			break
		}
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// stringValidator adapts a string check to survey's untyped validator.
func stringValidator(fn func(string) error) survey.Validator {
	return func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected text, got %T", ans)
		}
		if err := fn(s); err != nil {
			return errors.New(apperrors.UserMessage(err))
		}
		return nil
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}
