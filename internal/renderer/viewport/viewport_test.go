package viewport

import (
	"testing"
)

func TestNewViewport(t *testing.T) {
	v := NewViewport(22, 80)

	if v.Rows() != 22 {
		t.Errorf("expected rows 22, got %d", v.Rows())
	}
	if v.Cols() != 80 {
		t.Errorf("expected cols 80, got %d", v.Cols())
	}
	if v.RowOffset() != 0 {
		t.Errorf("expected row offset 0, got %d", v.RowOffset())
	}
	if v.ColOffset() != 0 {
		t.Errorf("expected col offset 0, got %d", v.ColOffset())
	}
}

func TestViewportResizeClamps(t *testing.T) {
	v := NewViewport(0, -5)
	if v.Rows() != 1 || v.Cols() != 1 {
		t.Errorf("expected 1x1 minimum, got %dx%d", v.Rows(), v.Cols())
	}

	v.Resize(40, 120)
	if v.Rows() != 40 || v.Cols() != 120 {
		t.Errorf("expected 40x120, got %dx%d", v.Rows(), v.Cols())
	}
}

func TestScrollVertical(t *testing.T) {
	v := NewViewport(10, 80)

	v.Scroll(5, 0)
	if v.RowOffset() != 0 {
		t.Errorf("row inside window should not scroll, got %d", v.RowOffset())
	}

	v.Scroll(10, 0)
	if v.RowOffset() != 1 {
		t.Errorf("row below window should scroll to keep it on last line, got %d", v.RowOffset())
	}

	v.Scroll(25, 0)
	if v.RowOffset() != 16 {
		t.Errorf("expected row offset 16, got %d", v.RowOffset())
	}

	v.Scroll(3, 0)
	if v.RowOffset() != 3 {
		t.Errorf("row above window should become first line, got %d", v.RowOffset())
	}
}

func TestScrollHorizontal(t *testing.T) {
	v := NewViewport(10, 20)

	v.Scroll(0, 19)
	if v.ColOffset() != 0 {
		t.Errorf("column inside window should not scroll, got %d", v.ColOffset())
	}

	v.Scroll(0, 20)
	if v.ColOffset() != 1 {
		t.Errorf("expected col offset 1, got %d", v.ColOffset())
	}

	v.Scroll(0, 0)
	if v.ColOffset() != 0 {
		t.Errorf("expected col offset 0, got %d", v.ColOffset())
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	v := NewViewport(7, 13)
	positions := [][2]int{{0, 0}, {100, 3}, {50, 200}, {6, 12}, {0, 40}, {99, 0}}

	for _, p := range positions {
		v.Scroll(p[0], p[1])
		y, x := v.ScreenPosition(p[0], p[1])
		if y < 0 || y >= v.Rows() || x < 0 || x >= v.Cols() {
			t.Errorf("(%d,%d) not visible after Scroll: offsets (%d,%d)",
				p[0], p[1], v.RowOffset(), v.ColOffset())
		}
	}
}

func TestScrollIdempotent(t *testing.T) {
	v := NewViewport(5, 10)
	v.Scroll(42, 17)
	row, col := v.RowOffset(), v.ColOffset()

	v.Scroll(42, 17)
	if v.RowOffset() != row || v.ColOffset() != col {
		t.Errorf("second Scroll changed offsets: (%d,%d) -> (%d,%d)",
			row, col, v.RowOffset(), v.ColOffset())
	}
}

func TestScreenPosition(t *testing.T) {
	v := NewViewport(10, 10)
	v.Scroll(29, 13)

	y, x := v.ScreenPosition(23, 9)
	if y != 3 || x != 5 {
		t.Errorf("expected (3,5), got (%d,%d)", y, x)
	}
	if v.BufferRow(0) != 20 || v.BufferRow(v.Rows()-1) != 29 {
		t.Errorf("unexpected row range %d..%d", v.BufferRow(0), v.BufferRow(v.Rows()-1))
	}
}
