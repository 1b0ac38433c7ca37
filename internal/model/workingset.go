package model

// WorkingSetVersion is the document version written by this build.
const WorkingSetVersion = 1

// WorkingSet ties a tray and its cable list together for editing, save/load
// and export.
type WorkingSet struct {
	Version int          `json:"version" yaml:"version"`
	Name    string       `json:"name" yaml:"name"`
	Tray    TrayType     `json:"tray" yaml:"tray"`
	Cables  []CableEntry `json:"cables" yaml:"cables"`
}

// NewWorkingSet returns an empty working set on the default custom tray.
func NewWorkingSet() WorkingSet {
	return WorkingSet{
		Version: WorkingSetVersion,
		Name:    "Untitled",
		Tray:    CustomTray(),
		Cables:  []CableEntry{},
	}
}

// AddCable appends a cable entry to the end of the list.
func (ws *WorkingSet) AddCable(cable CableType, qty int) {
	ws.Cables = append(ws.Cables, NewCableEntry(cable, qty))
}

// UpdateCable replaces the entry at index i. It returns false when i is out
// of range.
func (ws *WorkingSet) UpdateCable(i int, entry CableEntry) bool {
	if i < 0 || i >= len(ws.Cables) {
		return false
	}
	ws.Cables[i] = entry
	return true
}

// RemoveCable deletes the entry at index i. It returns false when i is out
// of range.
func (ws *WorkingSet) RemoveCable(i int) bool {
	if i < 0 || i >= len(ws.Cables) {
		return false
	}
	ws.Cables = append(ws.Cables[:i], ws.Cables[i+1:]...)
	return true
}

// Clear removes every cable entry and keeps the tray.
func (ws *WorkingSet) Clear() {
	ws.Cables = []CableEntry{}
}

// Empty reports whether no entry takes part in aggregation.
func (ws WorkingSet) Empty() bool {
	for _, e := range ws.Cables {
		if e.Valid() {
			return false
		}
	}
	return true
}

// Stats recomputes the tray statistics with the given usable height ratio.
func (ws WorkingSet) Stats(heightRatio float64) TrayStats {
	return ComputeStatsWithHeightRatio(ws.Cables, ws.Tray, heightRatio)
}

// Evaluate recomputes the statistics and classifies them.
func (ws WorkingSet) Evaluate(heightRatio float64) (TrayStats, Assessment) {
	stats := ws.Stats(heightRatio)
	return stats, Classify(stats, ws.Empty())
}

// Clone returns a deep copy that shares no slice memory with ws.
func (ws WorkingSet) Clone() WorkingSet {
	out := ws
	out.Cables = make([]CableEntry, len(ws.Cables))
	copy(out.Cables, ws.Cables)
	return out
}
