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
	kilo "github.com/timburks/kilo/types"
)

// length of the row under the cursor; a cursor past the end uses the last row
func (e *Editor) cursorRowLength() int {
	rowCount := e.Buffer.GetRowCount()
	if rowCount == 0 {
		return 0
	}
	if e.Cursor.Row < rowCount {
		return e.Buffer.GetRowLength(e.Cursor.Row)
	}
	return e.Buffer.GetRowLength(rowCount - 1)
}

func (e *Editor) MoveCursor(direction int) {
	rowCount := e.Buffer.GetRowCount()
	switch direction {
	case kilo.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case kilo.MoveDown:
		if e.Cursor.Row < rowCount-1 {
			e.Cursor.Row++
		}
	case kilo.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			// wrap to the end of the previous line
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
		}
	case kilo.MoveRight:
		if e.Cursor.Col < e.cursorRowLength() {
			e.Cursor.Col++
		} else if e.Cursor.Row < rowCount-1 {
			// wrap to the start of the next line
			e.Cursor.Row++
			e.Cursor.Col = 0
		}
	case kilo.MoveHome:
		e.Cursor.Col = 0
	case kilo.MoveEnd:
		// the clamp below keeps this inside the line
		e.Cursor.Col = e.size.Cols
	case kilo.MovePageUp:
		for i := 0; i < e.size.Rows; i++ {
			e.MoveCursor(kilo.MoveUp)
		}
	case kilo.MovePageDown:
		for i := 0; i < e.size.Rows; i++ {
			e.MoveCursor(kilo.MoveDown)
		}
	}
	e.KeepCursorInRow()
}

// KeepCursorInRow clamps the cursor to the buffer. An empty buffer acts
// like a single empty row.
func (e *Editor) KeepCursorInRow() {
	rowCount := e.Buffer.GetRowCount()
	if rowCount == 0 {
		e.Cursor = kilo.Point{}
		return
	}
	e.Cursor.Row = clipToRange(e.Cursor.Row, 0, rowCount-1)
	e.Cursor.Col = clipToRange(e.Cursor.Col, 0, e.Buffer.GetRowLength(e.Cursor.Row))
}

func clipToRange(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
