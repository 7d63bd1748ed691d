//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
	kilo "github.com/timburks/kilo/types"
	"pgregory.net/rapid"
)

func editorWith(lines ...string) *Editor {
	e := NewEditor()
	e.Buffer = bufferWith(lines...)
	e.SetSize(kilo.Size{Rows: 3, Cols: 40})
	return e
}

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		name      string
		start     kilo.Point
		direction int
		expected  kilo.Point
	}{
		{"up", kilo.Point{Row: 1, Col: 2}, kilo.MoveUp, kilo.Point{Row: 0, Col: 2}},
		{"up at top", kilo.Point{Row: 0, Col: 2}, kilo.MoveUp, kilo.Point{Row: 0, Col: 2}},
		{"up clamps column", kilo.Point{Row: 2, Col: 7}, kilo.MoveUp, kilo.Point{Row: 1, Col: 2}},
		{"down", kilo.Point{Row: 0, Col: 1}, kilo.MoveDown, kilo.Point{Row: 1, Col: 1}},
		{"down at last row", kilo.Point{Row: 2, Col: 0}, kilo.MoveDown, kilo.Point{Row: 2, Col: 0}},
		{"left", kilo.Point{Row: 0, Col: 3}, kilo.MoveLeft, kilo.Point{Row: 0, Col: 2}},
		{"left wraps to previous line", kilo.Point{Row: 1, Col: 0}, kilo.MoveLeft, kilo.Point{Row: 0, Col: 5}},
		{"left at start of buffer", kilo.Point{Row: 0, Col: 0}, kilo.MoveLeft, kilo.Point{Row: 0, Col: 0}},
		{"right", kilo.Point{Row: 0, Col: 4}, kilo.MoveRight, kilo.Point{Row: 0, Col: 5}},
		{"right wraps to next line", kilo.Point{Row: 0, Col: 5}, kilo.MoveRight, kilo.Point{Row: 1, Col: 0}},
		{"right at end of buffer", kilo.Point{Row: 2, Col: 7}, kilo.MoveRight, kilo.Point{Row: 2, Col: 7}},
		{"home", kilo.Point{Row: 2, Col: 4}, kilo.MoveHome, kilo.Point{Row: 2, Col: 0}},
		{"end stops at line length", kilo.Point{Row: 0, Col: 1}, kilo.MoveEnd, kilo.Point{Row: 0, Col: 5}},
		{"page down", kilo.Point{Row: 0, Col: 0}, kilo.MovePageDown, kilo.Point{Row: 2, Col: 0}},
		{"page up", kilo.Point{Row: 2, Col: 1}, kilo.MovePageUp, kilo.Point{Row: 0, Col: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := editorWith("hello", "hi", "goodbye")
			e.Cursor = tt.start
			e.MoveCursor(tt.direction)
			require.Equal(t, tt.expected, e.Cursor)
		})
	}
}

// End moves to the viewport width, not the line length; only the clamp
// keeps it inside the line. A line wider than the viewport shows this.
func TestMoveCursorEndUsesViewportWidth(t *testing.T) {
	e := editorWith("abcdefghijklmnopqrstuvwxyz")
	e.SetSize(kilo.Size{Rows: 3, Cols: 10})
	e.MoveCursor(kilo.MoveEnd)
	require.Equal(t, kilo.Point{Row: 0, Col: 10}, e.Cursor)
}

func TestMoveCursorOnEmptyBuffer(t *testing.T) {
	e := NewEditor()
	e.SetSize(kilo.Size{Rows: 3, Cols: 40})
	for _, direction := range []int{kilo.MoveUp, kilo.MoveDown, kilo.MoveLeft, kilo.MoveRight, kilo.MoveEnd, kilo.MovePageDown} {
		e.MoveCursor(direction)
		require.Equal(t, kilo.Point{}, e.Cursor)
	}
}

func TestEditPrimitivesMoveCursor(t *testing.T) {
	e := NewEditor()
	e.InsertChar('h')
	e.InsertChar('i')
	require.Equal(t, kilo.Point{Row: 0, Col: 2}, e.Cursor)

	e.InsertNewline()
	require.Equal(t, kilo.Point{Row: 1, Col: 0}, e.Cursor)
	require.Equal(t, []string{"hi", ""}, e.Buffer.Lines())

	e.BackspaceChar()
	require.Equal(t, kilo.Point{Row: 0, Col: 2}, e.Cursor)
	require.Equal(t, []string{"hi"}, e.Buffer.Lines())
}

func TestProperty_CursorStaysInBuffer(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,8}`), 0, 6).Draw(rt, "lines")
		e := editorWith(lines...)
		e.SetSize(kilo.Size{
			Rows: rapid.IntRange(1, 5).Draw(rt, "rows"),
			Cols: rapid.IntRange(1, 12).Draw(rt, "cols"),
		})
		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch action := rapid.IntRange(0, 11).Draw(rt, "action"); {
			case action <= kilo.MovePageDown:
				e.MoveCursor(action)
			case action == 8:
				e.InsertChar('x')
			case action == 9:
				e.InsertNewline()
			case action == 10:
				e.BackspaceChar()
			default:
				e.MoveCursor(kilo.MoveRight)
				e.BackspaceChar()
			}
			rowCount := e.Buffer.GetRowCount()
			require.GreaterOrEqual(rt, e.Cursor.Row, 0)
			require.Less(rt, e.Cursor.Row, max(rowCount, 1))
			require.GreaterOrEqual(rt, e.Cursor.Col, 0)
			require.LessOrEqual(rt, e.Cursor.Col, e.Buffer.GetRowLength(e.Cursor.Row))
		}
	})
}
