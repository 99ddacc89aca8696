package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/seedpacket/pkg/layout"
)

func TestWriteLayoutJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeLayout(&buf, layout.Compute(), formatJSON); err != nil {
		t.Fatalf("writeLayout() error = %v", err)
	}

	var doc struct {
		Page  layout.Rect `json:"page"`
		Front struct {
			Stroke string `json:"stroke"`
			Closed bool   `json:"closed"`
		} `json:"front"`
		Flap struct {
			Segments []struct {
				Kind string `json:"kind"`
			} `json:"segments"`
		} `json:"flap"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Page.W != 612 || doc.Page.H != 792 {
		t.Errorf("page = %+v, want 612x792", doc.Page)
	}
	if doc.Front.Stroke != "dashed" || !doc.Front.Closed {
		t.Errorf("front = %+v, want closed dashed outline", doc.Front)
	}
	if len(doc.Flap.Segments) != 1 || doc.Flap.Segments[0].Kind != "arc" {
		t.Errorf("flap segments = %+v, want one arc", doc.Flap.Segments)
	}
}

func TestWriteLayoutYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeLayout(&buf, layout.Compute(), formatYAML); err != nil {
		t.Fatalf("writeLayout() error = %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	for _, key := range []string{"dimensions", "front_panel", "flap_fold", "bottom_tab", "notes", "image"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("YAML output missing %q", key)
		}
	}
	if !strings.Contains(buf.String(), "stroke: dashed") {
		t.Error("strokes should be written by name")
	}
}

func TestWriteLayoutTable(t *testing.T) {
	var buf bytes.Buffer
	if err := writeLayout(&buf, layout.Compute(), formatTable); err != nil {
		t.Fatalf("writeLayout() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"front", "flap-fold", "bottom-tab", "dashed", "(102,138)", "504"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestWriteLayoutInvalidFormat(t *testing.T) {
	if err := writeLayout(&bytes.Buffer{}, layout.Compute(), "xml"); err == nil {
		t.Error("writeLayout() should reject unknown formats")
	}
}
