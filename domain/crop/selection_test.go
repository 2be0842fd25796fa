package crop

import "testing"

type transitionRecorder struct {
	seq []SelectionState
}

func (r *transitionRecorder) listener(prev, next SelectionState) { r.seq = append(r.seq, next) }

func TestTracker_StartsIdle(t *testing.T) {
	var tr Tracker
	if tr.Current() != StateIdle {
		t.Fatalf("expected idle, got %v", tr.Current())
	}
	if _, ok := tr.Selection(); ok {
		t.Fatalf("idle tracker must not report a selection")
	}
	if tr.Handle(Drag(10, 10)) {
		t.Fatalf("drag while idle must be ignored")
	}
}

func TestTracker_PressAndDrag(t *testing.T) {
	tr := NewTracker()
	tr.Handle(Press(10, 20))
	sel, ok := tr.Selection()
	if !ok || *sel != (SelectionRect{X0: 10, Y0: 20, X1: 10, Y1: 20}) {
		t.Fatalf("unexpected selection after press: %+v ok=%v", sel, ok)
	}
	tr.Handle(Drag(30, 40))
	tr.Handle(Drag(5, 60))
	sel, _ = tr.Selection()
	if *sel != (SelectionRect{X0: 10, Y0: 20, X1: 5, Y1: 60}) {
		t.Fatalf("anchor must stay fixed while endpoint follows drags: %+v", sel)
	}
	if tr.Handle(Drag(5, 60)) {
		t.Fatalf("drag to the same point should report no change")
	}
}

func TestTracker_NewPressReplacesSelection(t *testing.T) {
	tr := NewTracker()
	r := &transitionRecorder{}
	tr.OnChange(r.listener)
	tr.Handle(Press(1, 1))
	tr.Handle(Drag(100, 100))
	tr.Handle(Press(50, 50))
	sel, _ := tr.Selection()
	if *sel != (SelectionRect{X0: 50, Y0: 50, X1: 50, Y1: 50}) {
		t.Fatalf("expected fresh rectangle, got %+v", sel)
	}
	if len(r.seq) != 2 || r.seq[0] != StateDrawing || r.seq[1] != StateDrawing {
		t.Fatalf("unexpected transitions %v", r.seq)
	}
}

func TestTracker_SelectionIsACopy(t *testing.T) {
	tr := NewTracker()
	tr.Handle(Press(1, 2))
	sel, _ := tr.Selection()
	sel.X1 = 999
	again, _ := tr.Selection()
	if again.X1 != 1 {
		t.Fatalf("caller mutation leaked into tracker: %+v", again)
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	r := &transitionRecorder{}
	tr.OnChange(r.listener)
	if tr.Handle(Reset()) {
		t.Fatalf("reset while idle should be a no-op")
	}
	tr.Handle(Press(3, 3))
	if !tr.Handle(Reset()) {
		t.Fatalf("reset while drawing should report a change")
	}
	if tr.Current() != StateIdle {
		t.Fatalf("expected idle after reset, got %v", tr.Current())
	}
	if _, ok := tr.Selection(); ok {
		t.Fatalf("selection must be gone after reset")
	}
	if len(r.seq) != 2 || r.seq[1] != StateIdle {
		t.Fatalf("unexpected transitions %v", r.seq)
	}
}

func TestSelectionState_String(t *testing.T) {
	if StateIdle.String() != "idle" || StateDrawing.String() != "drawing" || SelectionState(42).String() != "unknown" {
		t.Fatalf("unexpected state names")
	}
	if EventPress.String() != "press" || EventKind(9).String() != "unknown" {
		t.Fatalf("unexpected event names")
	}
}
