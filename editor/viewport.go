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

// A Viewport is the part of a buffer that is visible on the screen.
type Viewport struct {
	Offset kilo.Size // top-left buffer position that is visible
	Size   kilo.Size // visible rows and columns
}

// Recompute the display offset to keep the cursor onscreen.
func (v *Viewport) Recompute(cursor kilo.Point, size kilo.Size) {
	v.Size = size
	if v.Size.Rows < 1 {
		v.Size.Rows = 1
	}
	if v.Size.Cols < 1 {
		v.Size.Cols = 1
	}
	if cursor.Row < v.Offset.Rows {
		// scroll up
		v.Offset.Rows = cursor.Row
	}
	if cursor.Row-v.Offset.Rows >= v.Size.Rows {
		// scroll down
		v.Offset.Rows = cursor.Row - v.Size.Rows + 1
	}
	if cursor.Col < v.Offset.Cols {
		// scroll left
		v.Offset.Cols = cursor.Col
	}
	if cursor.Col-v.Offset.Cols >= v.Size.Cols {
		// scroll right
		v.Offset.Cols = cursor.Col - v.Size.Cols + 1
	}
}

// VisibleSlice returns the visible part of screen row i, or "" when the
// buffer row is shorter than the column offset or past the end of the buffer.
func (v *Viewport) VisibleSlice(b *Buffer, i int) string {
	row := v.Offset.Rows + i
	if row < 0 || row >= b.GetRowCount() {
		return ""
	}
	line := b.rows[row].Text
	if v.Offset.Cols >= len(line) {
		return ""
	}
	line = line[v.Offset.Cols:]
	// truncate line to fit screen
	if len(line) > v.Size.Cols {
		line = line[0:v.Size.Cols]
	}
	return string(line)
}

// ScreenCursor converts a buffer position into a screen position.
func (v *Viewport) ScreenCursor(cursor kilo.Point) kilo.Point {
	return kilo.Point{
		Row: cursor.Row - v.Offset.Rows,
		Col: cursor.Col - v.Offset.Cols,
	}
}
