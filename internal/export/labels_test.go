package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/TrayCalc/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, []Report{sampleReport(), overloadedReport()})
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	err := ExportLabels(path, nil)
	if !errors.Is(err, ErrNoTray) {
		t.Fatalf("expected ErrNoTray, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an empty report list")
	}
}

func TestExportLabels_InvalidTray(t *testing.T) {
	ws := sampleWorkingSet()
	ws.Tray.Height = 0
	r := NewReport(ws, model.DefaultAppConfig(), reportTime)

	err := ExportLabels(filepath.Join(t.TempDir(), "bad.pdf"), []Report{sampleReport(), r})
	if !errors.Is(err, ErrNoTray) {
		t.Fatalf("expected ErrNoTray, got %v", err)
	}
}

func TestExportLabels_MultiplePages(t *testing.T) {
	reports := make([]Report, 35)
	for i := range reports {
		reports[i] = sampleReport()
	}

	path := filepath.Join(t.TempDir(), "multi.pdf")
	if err := ExportLabels(path, reports); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos([]Report{sampleReport(), overloadedReport()})
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}

	ok := labels[0]
	if ok.Tray != "Ladder HDG heavy 300 x 100" {
		t.Errorf("expected tray name, got %q", ok.Tray)
	}
	if ok.Cables != 28 {
		t.Errorf("expected 28 cables, got %d", ok.Cables)
	}
	if ok.Status != "ok" || ok.Failing {
		t.Errorf("expected ok status, got %q (failing=%v)", ok.Status, ok.Failing)
	}

	over := labels[1]
	if over.Status != "overloaded: structural + fill" || !over.Failing {
		t.Errorf("expected overloaded status, got %q (failing=%v)", over.Status, over.Failing)
	}
}

func TestLabelInfoJSON(t *testing.T) {
	info := CollectLabelInfos([]Report{sampleReport()})[0]

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, key := range []string{"tray", "width_mm", "height_mm", "structural_utilisation_percent", "area_fill_percent", "status"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in label JSON", key)
		}
	}
	if _, ok := decoded["Failing"]; ok {
		t.Error("Failing should not be encoded")
	}
}
