package ui

import (
	"testing"

	"github.com/piwi3910/TrayCalc/internal/model"
)

// withCables returns a working set holding n distinct cables.
func withCables(n int) model.WorkingSet {
	ws := model.NewWorkingSet()
	for i := 0; i < n; i++ {
		ws.AddCable(model.NewCableType("CAT6A", 7.6+float64(i), 0.055), 1)
	}
	return ws
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
	if h.UndoLabel() != "" {
		t.Error("new history should have no undo label")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(withCables(0), "initial"))
	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}
	if h.UndoLabel() != "initial" {
		t.Errorf("expected undo label 'initial', got %q", h.UndoLabel())
	}

	current := MakeSnapshot(withCables(1), "current")
	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(restored.WorkingSet.Cables) != 0 {
		t.Errorf("expected 0 cables after undo, got %d", len(restored.WorkingSet.Cables))
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(withCables(0), "empty"))
	h.Push(MakeSnapshot(withCables(1), "one cable"))
	current := MakeSnapshot(withCables(2), "two cables")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if len(restored.WorkingSet.Cables) != 1 {
		t.Errorf("expected 1 cable, got %d", len(restored.WorkingSet.Cables))
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if len(redone.WorkingSet.Cables) != 2 {
		t.Errorf("expected 2 cables after redo, got %d", len(redone.WorkingSet.Cables))
	}
}

func TestUndoRestoresTray(t *testing.T) {
	h := NewHistory()

	ws := withCables(1)
	h.Push(MakeSnapshot(ws, "Change Tray"))

	ws.Tray = model.NewTrayType("Ladder 600 x 100", 600, 100, 200, 9)
	restored, ok := h.Undo(MakeSnapshot(ws, "current"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.WorkingSet.Tray.Name != "Custom tray" {
		t.Errorf("expected original tray, got %q", restored.WorkingSet.Tray.Name)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(withCables(0), "empty"))
	if _, ok := h.Undo(MakeSnapshot(withCables(1), "one cable")); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	h.Push(MakeSnapshot(withCables(0), "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(withCables(i), ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
	if len(h.undoStack[0].WorkingSet.Cables) != 2 {
		t.Errorf("oldest snapshots should be dropped first")
	}
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(MakeSnapshot(withCables(0), "current")); ok {
		t.Error("undo on empty history should return false")
	}
}

func TestRedoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Redo(MakeSnapshot(withCables(0), "current")); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(withCables(0), "a"))
	h.Push(MakeSnapshot(withCables(1), "b"))
	h.Undo(MakeSnapshot(withCables(2), "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	original := withCables(1)
	snap := MakeSnapshot(original, "test")

	original.Cables[0].Cable.Name = "Modified"
	original.Cables[0].Quantity = 99

	if snap.WorkingSet.Cables[0].Cable.Name != "CAT6A" {
		t.Error("snapshot should be independent of original slice")
	}
	if snap.WorkingSet.Cables[0].Quantity != 1 {
		t.Error("snapshot quantity should be independent of original")
	}
}

func TestMultipleUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(withCables(0), "empty"))
	h.Push(MakeSnapshot(withCables(1), "1 cable"))
	h.Push(MakeSnapshot(withCables(2), "2 cables"))
	current := MakeSnapshot(withCables(3), "3 cables")

	s, ok := h.Undo(current)
	if !ok || len(s.WorkingSet.Cables) != 2 {
		t.Fatalf("first undo: expected 2 cables, got %d", len(s.WorkingSet.Cables))
	}
	s, ok = h.Undo(s)
	if !ok || len(s.WorkingSet.Cables) != 1 {
		t.Fatalf("second undo: expected 1 cable, got %d", len(s.WorkingSet.Cables))
	}
	s, ok = h.Undo(s)
	if !ok || len(s.WorkingSet.Cables) != 0 {
		t.Fatalf("third undo: expected 0 cables, got %d", len(s.WorkingSet.Cables))
	}
	if h.CanUndo() {
		t.Error("should not be able to undo further")
	}

	for want := 1; want <= 3; want++ {
		s, ok = h.Redo(s)
		if !ok || len(s.WorkingSet.Cables) != want {
			t.Fatalf("redo: expected %d cables, got %d", want, len(s.WorkingSet.Cables))
		}
	}
	if h.CanRedo() {
		t.Error("should not be able to redo further")
	}
}
