package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/seedpacket/pkg/packet"
)

// scriptedPrompter answers prompts from fixed values and records what it
// was offered.
type scriptedPrompter struct {
	inputs  []string
	notes   string
	choice  string
	err     error
	asked   []string
	options []string
}

func (p *scriptedPrompter) Input(_ context.Context, message, def string, validate func(string) error) (string, error) {
	p.asked = append(p.asked, message+"="+def)
	if p.err != nil {
		return "", p.err
	}
	ans := p.inputs[0]
	p.inputs = p.inputs[1:]
	if validate != nil {
		if err := validate(ans); err != nil {
			return "", err
		}
	}
	return ans, nil
}

func (p *scriptedPrompter) TextArea(_ context.Context, message, def string) (string, error) {
	p.asked = append(p.asked, message+"="+def)
	return p.notes, nil
}

func (p *scriptedPrompter) Select(_ context.Context, message string, options []string, def string) (string, error) {
	p.asked = append(p.asked, message+"="+def)
	p.options = options
	return p.choice, nil
}

func TestPromptPacket(t *testing.T) {
	p := &scriptedPrompter{
		inputs: []string{"Tomato", "2024-05-01"},
		notes:  "Full sun.",
		choice: "tomato.png",
	}
	got, err := promptPacket(context.Background(), p, packet.Input{Notes: "old"}, []string{"basil.png", "tomato.png"})
	if err != nil {
		t.Fatalf("promptPacket() error = %v", err)
	}

	want := packet.Input{SeedName: "Tomato", Date: "2024-05-01", Notes: "Full sun.", BackgroundImage: "tomato.png"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("promptPacket() mismatch (-want +got):\n%s", diff)
	}
	wantAsked := []string{
		"Seed name=" + packet.DefaultSeedName,
		"Date (YYYY-MM-DD)=",
		"Notes=old",
		"Background image=" + noImage,
	}
	if diff := cmp.Diff(wantAsked, p.asked); diff != "" {
		t.Errorf("prompts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{noImage, "basil.png", "tomato.png"}, p.options); diff != "" {
		t.Errorf("image options (-want +got):\n%s", diff)
	}
}

func TestPromptPacketNoImageChoice(t *testing.T) {
	p := &scriptedPrompter{inputs: []string{"Kale", ""}, choice: noImage}
	got, err := promptPacket(context.Background(), p, packet.Input{BackgroundImage: "kale.png"}, []string{"kale.png"})
	if err != nil {
		t.Fatal(err)
	}
	if got.BackgroundImage != "" {
		t.Errorf("BackgroundImage = %q, want none", got.BackgroundImage)
	}
}

func TestPromptPacketSkipsImagesWhenNoneAvailable(t *testing.T) {
	p := &scriptedPrompter{inputs: []string{"Kale", ""}}
	if _, err := promptPacket(context.Background(), p, packet.Input{}, nil); err != nil {
		t.Fatal(err)
	}
	if len(p.asked) != 3 {
		t.Errorf("asked %d prompts, want 3 (no image prompt): %v", len(p.asked), p.asked)
	}
}

func TestPromptPacketErrors(t *testing.T) {
	p := &scriptedPrompter{err: errAborted}
	if _, err := promptPacket(context.Background(), p, packet.Input{}, nil); !errors.Is(err, errAborted) {
		t.Errorf("promptPacket() error = %v, want errAborted", err)
	}

	p = &scriptedPrompter{inputs: []string{"Kale", "tomorrow"}}
	if _, err := promptPacket(context.Background(), p, packet.Input{}, nil); err == nil {
		t.Error("invalid date should be rejected")
	}

	p = &scriptedPrompter{inputs: []string{"Kale", ""}, notes: "bad\x00notes"}
	if _, err := promptPacket(context.Background(), p, packet.Input{}, nil); err == nil {
		t.Error("notes with control characters should be rejected")
	}
}

func TestStringValidator(t *testing.T) {
	v := stringValidator(validateDate)
	if err := v("2024-05-01"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if err := v("05/01/2024"); err == nil {
		t.Error("invalid date accepted")
	}
	if err := v(42); err == nil {
		t.Error("non-string answer accepted")
	}
}
