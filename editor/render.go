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
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	kilo "github.com/timburks/kilo/types"
)

// Scroll recomputes the viewport so that the cursor is visible.
func (e *Editor) Scroll() {
	e.viewport.Recompute(e.Cursor, e.size)
}

// RenderRows returns the text area, one string per screen row.
// Rows past the end of the buffer are drawn as "~"; an empty buffer shows
// a welcome banner a third of the way down.
func (e *Editor) RenderRows(version string) []string {
	rows := make([]string, e.size.Rows)
	rowCount := e.Buffer.GetRowCount()
	for i := range rows {
		if i+e.viewport.Offset.Rows < rowCount {
			rows[i] = e.viewport.VisibleSlice(e.Buffer, i)
		} else if rowCount == 0 && i == e.size.Rows/3 {
			rows[i] = welcome(version, e.size.Cols)
		} else {
			rows[i] = "~"
		}
	}
	return rows
}

func welcome(version string, width int) string {
	text := runewidth.Truncate(fmt.Sprintf("Kilo editor -- version %s", version), width, "")
	padding := (width - runewidth.StringWidth(text)) / 2
	if padding == 0 {
		return text
	}
	return "~" + strings.Repeat(" ", padding-1) + text
}

// StatusBar returns the status line: file name, line count and modified
// marker on the left, "row/total" on the right, padded to width.
func (e *Editor) StatusBar(width int) string {
	name := e.Buffer.GetFileName()
	if name == "" {
		name = "[No Name]"
	}
	rowCount := e.Buffer.GetRowCount()
	status := fmt.Sprintf("%s - %d lines", name, rowCount)
	if e.Buffer.Dirty() > 0 {
		status += " (modified)"
	}
	finalText := fmt.Sprintf("%d/%d", e.Cursor.Row+1, rowCount)
	finalWidth := runewidth.StringWidth(finalText)
	if finalWidth >= width {
		return runewidth.Truncate(finalText, width, "")
	}
	status = runewidth.Truncate(status, width-finalWidth-1, "")
	return runewidth.FillRight(status, width-finalWidth) + finalText
}

// ScreenCursor returns the cursor position relative to the viewport.
func (e *Editor) ScreenCursor() kilo.Point {
	return e.viewport.ScreenCursor(e.Cursor)
}
