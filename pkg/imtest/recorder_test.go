package imtest

import (
	"strings"
	"testing"

	"github.com/go-imscope/imscope/pkg/im"
)

func TestRecorderTracksTraceAndCounts(t *testing.T) {
	rec := NewRecorder()
	rec.Begin("w", nil, 0)
	rec.PushItemWidth(80)
	rec.PopItemWidth()
	rec.End()

	if got := rec.Count("Begin"); got != 1 {
		t.Errorf("Count(Begin) = %d, want 1", got)
	}
	if rec.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", rec.Depth())
	}
	if err := rec.Err(); err != nil {
		t.Errorf("Err = %v, want nil", err)
	}
	want := []string{"Begin", "PushItemWidth", "PopItemWidth", "End"}
	got := rec.Trace()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Trace = %v, want %v", got, want)
		}
	}
}

func TestRecorderDetectsUnmatchedEnd(t *testing.T) {
	rec := NewRecorder()
	rec.EndCombo()
	if err := rec.Err(); err == nil || !strings.Contains(err.Error(), "no open region") {
		t.Errorf("Err = %v, want unmatched-end error", err)
	}
}

func TestRecorderDetectsWrongEndOrder(t *testing.T) {
	rec := NewRecorder()
	rec.BeginGroup()
	rec.PushFont(1)
	rec.EndGroup() // owes PopFont first
	if err := rec.Err(); err == nil || !strings.Contains(err.Error(), "owes PopFont") {
		t.Errorf("Err = %v, want out-of-order error", err)
	}
}

func TestRecorderReportsLeftOpenRegions(t *testing.T) {
	rec := NewRecorder()
	rec.Begin("w", nil, 0)
	if err := rec.Err(); err == nil || !strings.Contains(err.Error(), "left open") {
		t.Errorf("Err = %v, want left-open error", err)
	}
}

func TestCloseForcesBeginFalse(t *testing.T) {
	rec := NewRecorder()
	rec.Close("BeginCombo")
	if rec.BeginCombo("c", "", 0) {
		t.Error("closed BeginCombo returned true")
	}
	// A closed conditional begin pushes nothing.
	if rec.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", rec.Depth())
	}

	// A closed window still owes its End.
	rec.Close("Begin")
	if rec.Begin("w", nil, 0) {
		t.Error("closed Begin returned true")
	}
	if rec.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", rec.Depth())
	}
	rec.End()

	rec.Open("BeginCombo")
	if !rec.BeginCombo("c", "", 0) {
		t.Error("reopened BeginCombo returned false")
	}
	rec.EndCombo()
}

func TestPopStyleCountsUnwindMultipleEntries(t *testing.T) {
	rec := NewRecorder()
	rec.PushStyleColorU32(im.ColText, 0xFFFFFFFF)
	rec.PushStyleColorVec4(im.ColButton, im.Vec4{1, 1, 1, 1})
	rec.PopStyleColor(2)

	if rec.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", rec.Depth())
	}
	if got := rec.Count("PopStyleColor"); got != 1 {
		t.Errorf("Count(PopStyleColor) = %d, want 1", got)
	}
	if err := rec.Err(); err != nil {
		t.Errorf("Err = %v, want nil", err)
	}
}
