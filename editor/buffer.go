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
	"bytes"
	"fmt"
	"io"

	kilo "github.com/timburks/kilo/types"
)

// A Buffer represents a file being edited.
// All changes to its rows go through Buffer methods so that dirty stays accurate.
type Buffer struct {
	rows     []*Row
	fileName string
	dirty    int // count of unsaved changes
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) Dirty() int {
	return b.dirty
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

// Lines returns a copy of the buffer contents, one string per row.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.DisplayText()
	}
	return lines
}

func (b *Buffer) TextAfter(row, col int) string {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

func (b *Buffer) appendBlankRow() {
	b.rows = append(b.rows, NewRow(""))
}

// InsertChar inserts c at (row, col). A row one past the end gets a new
// blank row first; col is clamped to the row length.
func (b *Buffer) InsertChar(row, col int, c byte) {
	if row < 0 || row > len(b.rows) {
		return
	}
	if row == len(b.rows) {
		b.appendBlankRow()
	}
	b.rows[row].InsertChar(col, c)
	b.dirty++
}

// DeleteCharBefore removes the character before (row, col) and returns
// the position where the cursor belongs afterwards. At column 0 the row
// is joined onto the end of the previous row.
func (b *Buffer) DeleteCharBefore(row, col int) kilo.Point {
	cursor := kilo.Point{Row: row, Col: col}
	if row < 0 || row >= len(b.rows) {
		return cursor
	}
	if row == 0 && col == 0 {
		return cursor
	}
	if col > b.rows[row].Length() {
		col = b.rows[row].Length()
	}
	if col > 0 {
		b.rows[row].DeleteChar(col - 1)
		b.dirty++
		return kilo.Point{Row: row, Col: col - 1}
	}
	// join this row onto the previous one
	previous := b.rows[row-1]
	joinCol := previous.Length()
	previous.Join(b.rows[row])
	b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	b.dirty++
	return kilo.Point{Row: row - 1, Col: joinCol}
}

// SplitLine breaks the row at col; the text after col moves to a new row below.
func (b *Buffer) SplitLine(row, col int) {
	if row < 0 || row > len(b.rows) {
		return
	}
	if row == len(b.rows) {
		b.appendBlankRow()
	}
	newRow := b.rows[row].Split(col)
	i := row + 1
	// add a dummy row at the end and shift rows down to make room
	b.appendBlankRow()
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = newRow
	b.dirty++
}

// Bytes joins the rows with newlines. There is no newline after the last row.
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	for i, row := range b.rows {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(row.Text)
	}
	return buf.Bytes()
}

func (b *Buffer) LoadBytes(data []byte) {
	b.rows = make([]*Row, 0)
	if len(data) > 0 {
		for _, line := range bytes.Split(data, []byte("\n")) {
			b.rows = append(b.rows, NewRow(string(line)))
		}
	}
	b.dirty = 0
}

// Load replaces the buffer contents with everything read from r.
func (b *Buffer) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading buffer: %w", err)
	}
	b.LoadBytes(data)
	return nil
}

// Save writes the buffer to w and returns the number of lines written.
// dirty is only reset when the write succeeds.
func (b *Buffer) Save(w io.Writer) (int, error) {
	if _, err := w.Write(b.Bytes()); err != nil {
		return 0, fmt.Errorf("writing buffer: %w", err)
	}
	b.dirty = 0
	return len(b.rows), nil
}
