package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/TrayCalc/internal/model"
)

// ErrUnsupportedVersion is returned when a working set was written by a
// newer build.
var ErrUnsupportedVersion = errors.New("unsupported working set version")

// cableRow is the flat on-disk form of a cable entry.
type cableRow struct {
	Name     string  `json:"name" yaml:"name"`
	Diameter float64 `json:"diameter_mm" yaml:"diameter_mm"`
	Weight   float64 `json:"weight_kg_per_m" yaml:"weight_kg_per_m"`
	Quantity int     `json:"qty" yaml:"qty"`
}

// document is the versioned on-disk form of a working set.
type document struct {
	Version int            `json:"version" yaml:"version"`
	Name    string         `json:"name,omitempty" yaml:"name,omitempty"`
	Cables  []cableRow     `json:"cables" yaml:"cables"`
	Tray    model.TrayType `json:"tray" yaml:"tray"`
}

func toDocument(ws model.WorkingSet) document {
	doc := document{
		Version: model.WorkingSetVersion,
		Name:    ws.Name,
		Cables:  make([]cableRow, 0, len(ws.Cables)),
		Tray:    ws.Tray,
	}
	for _, e := range ws.Cables {
		doc.Cables = append(doc.Cables, cableRow{
			Name:     e.Cable.Name,
			Diameter: e.Cable.Diameter,
			Weight:   e.Cable.Weight,
			Quantity: e.Quantity,
		})
	}
	return doc
}

func fromDocument(doc document) (model.WorkingSet, error) {
	if doc.Version == 0 {
		doc.Version = 1
	}
	if doc.Version > model.WorkingSetVersion {
		return model.WorkingSet{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	ws := model.WorkingSet{
		Version: model.WorkingSetVersion,
		Name:    doc.Name,
		Tray:    doc.Tray,
		Cables:  make([]model.CableEntry, 0, len(doc.Cables)),
	}
	if ws.Name == "" {
		ws.Name = "Untitled"
	}
	if ws.Tray.Name == "" {
		ws.Tray.Name = model.CustomTray().Name
	}
	if ws.Tray.MaxFillRatio <= 0 || ws.Tray.MaxFillRatio > 1 {
		ws.Tray.MaxFillRatio = model.DefaultMaxFillRatio
	}
	for _, row := range doc.Cables {
		entry := model.NewCableEntry(model.NewCableType(row.Name, row.Diameter, row.Weight), row.Quantity)
		if !entry.Valid() {
			continue
		}
		ws.Cables = append(ws.Cables, entry)
	}
	return ws, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// SaveWorkingSet writes a working set to path. Files ending in .yaml or .yml
// are written as YAML, everything else as indented JSON.
func SaveWorkingSet(path string, ws model.WorkingSet) error {
	doc := toDocument(ws)

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode working set: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create working set directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write working set: %w", err)
	}
	return nil
}

// LoadWorkingSet reads a working set written by SaveWorkingSet. Cable rows
// with a non-positive diameter, weight or quantity are dropped.
func LoadWorkingSet(path string) (model.WorkingSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.WorkingSet{}, fmt.Errorf("failed to read working set: %w", err)
	}

	// Tray fields missing from the file keep the custom tray's values.
	doc := document{Tray: model.CustomTray()}
	if isYAML(path) {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return model.WorkingSet{}, fmt.Errorf("failed to parse working set: %w", err)
	}

	ws, err := fromDocument(doc)
	if err != nil {
		return model.WorkingSet{}, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	return ws, nil
}
