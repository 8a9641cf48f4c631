package search

import (
	"testing"

	"github.com/dshills/shim/internal/engine/buffer"
	"github.com/dshills/shim/internal/engine/highlight"
)

func testDoc(t *testing.T, lines []string, opts ...buffer.Option) *buffer.Document {
	t.Helper()
	d := buffer.NewDocument(opts...)
	for i, line := range lines {
		if err := d.InsertRow(i, line); err != nil {
			t.Fatalf("InsertRow(%d): %v", i, err)
		}
	}
	return d
}

func TestSearchBasic(t *testing.T) {
	d := testDoc(t, []string{"alpha", "beta", "gamma"})
	s := NewSession(d)

	result, done := s.Update("beta", IntentEdit)
	if done {
		t.Fatal("session ended early")
	}
	if !result.Found || result.Row != 1 || result.RawCol != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestSearchWrapsForward(t *testing.T) {
	d := testDoc(t, []string{"target", "middle", "target"})
	s := NewSession(d)

	r1, _ := s.Update("target", IntentEdit)
	if r1.Row != 0 {
		t.Fatalf("first hit on row %d", r1.Row)
	}
	r2, _ := s.Update("target", IntentNext)
	if r2.Row != 2 {
		t.Fatalf("second hit on row %d", r2.Row)
	}
	r3, _ := s.Update("target", IntentNext)
	if r3.Row != 0 {
		t.Errorf("expected wrap to row 0, got %d", r3.Row)
	}
}

func TestSearchWrapsBackward(t *testing.T) {
	d := testDoc(t, []string{"target", "middle", "target"})
	s := NewSession(d)

	r1, _ := s.Update("target", IntentEdit)
	if r1.Row != 0 {
		t.Fatalf("first hit on row %d", r1.Row)
	}
	r2, _ := s.Update("target", IntentPrevious)
	if r2.Row != 2 {
		t.Errorf("expected backward wrap to row 2, got %d", r2.Row)
	}
}

func TestSearchEditRestarts(t *testing.T) {
	d := testDoc(t, []string{"aa", "ab", "ac"})
	s := NewSession(d)

	r, _ := s.Update("a", IntentEdit)
	if r.Row != 0 {
		t.Fatalf("first hit on row %d", r.Row)
	}
	if r, _ = s.Update("a", IntentNext); r.Row != 1 {
		t.Fatalf("second hit on row %d", r.Row)
	}

	// Narrowing the query starts over from the top.
	if r, _ = s.Update("ac", IntentEdit); r.Row != 2 {
		t.Errorf("restart hit on row %d", r.Row)
	}
}

func TestSearchNoMatch(t *testing.T) {
	d := testDoc(t, []string{"alpha"})
	s := NewSession(d)

	result, done := s.Update("zeta", IntentEdit)
	if result.Found || done {
		t.Errorf("unexpected result: %+v done=%v", result, done)
	}

	if result, _ := s.Update("", IntentEdit); result.Found {
		t.Error("empty query should not match")
	}
}

func TestSearchMatchesRenderText(t *testing.T) {
	// The query matches against the render string, and the cursor column
	// maps back through the tab expansion.
	d := testDoc(t, []string{"\tword"})
	s := NewSession(d)

	result, _ := s.Update("word", IntentEdit)
	if !result.Found {
		t.Fatal("no match")
	}
	if result.RenderCol != 8 {
		t.Errorf("render col = %d, want 8", result.RenderCol)
	}
	if result.RawCol != 1 {
		t.Errorf("raw col = %d, want 1", result.RawCol)
	}
}

func TestSearchOverlay(t *testing.T) {
	d := testDoc(t, []string{"int value;"}, buffer.WithProfile(highlight.CProfile()))
	s := NewSession(d)

	before := make([]highlight.Class, len(d.Row(0).HL))
	copy(before, d.Row(0).HL)

	result, _ := s.Update("value", IntentEdit)
	if !result.Found {
		t.Fatal("no match")
	}
	for i := 4; i < 9; i++ {
		if d.Row(0).HL[i] != highlight.Match {
			t.Errorf("byte %d not overlaid: %v", i, d.Row(0).HL[i])
		}
	}
	if d.Row(0).HL[0] != highlight.Keyword2 {
		t.Error("overlay clobbered bytes outside the match")
	}

	// Ending the session restores the original classes.
	if _, done := s.Update("value", IntentConfirm); !done {
		t.Fatal("confirm should end the session")
	}
	for i, c := range d.Row(0).HL {
		if c != before[i] {
			t.Errorf("byte %d not restored: %v != %v", i, c, before[i])
		}
	}
}

func TestSearchOverlayMovesWithCursor(t *testing.T) {
	d := testDoc(t, []string{"hit one", "hit two"}, buffer.WithProfile(highlight.CProfile()))
	s := NewSession(d)

	s.Update("hit", IntentEdit)
	s.Update("hit", IntentNext)

	if d.Row(0).HL[0] == highlight.Match {
		t.Error("previous hit should be restored")
	}
	if d.Row(1).HL[0] != highlight.Match {
		t.Error("current hit should be overlaid")
	}
}

func TestSearchStaleOverlayAfterEdit(t *testing.T) {
	d := testDoc(t, []string{"stale"})
	s := NewSession(d)

	if r, _ := s.Update("stale", IntentEdit); !r.Found {
		t.Fatal("no match")
	}

	// A document edit rebuilds the row's highlights; the session must not
	// write its stale copy back.
	if err := d.InsertChar(0, 0, 'x'); err != nil {
		t.Fatal(err)
	}
	hl := make([]highlight.Class, len(d.Row(0).HL))
	copy(hl, d.Row(0).HL)

	s.Update("stale", IntentCancel)
	for i, c := range d.Row(0).HL {
		if c != hl[i] {
			t.Errorf("byte %d changed: %v != %v", i, c, hl[i])
		}
	}
}
