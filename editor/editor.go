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
	"errors"
	"fmt"
	"os"

	kilo "github.com/timburks/kilo/types"
)

// ErrNoFileName is returned when a buffer without a name is written.
var ErrNoFileName = errors.New("no file name")

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Cursor   kilo.Point // cursor position
	Buffer   *Buffer    // buffer being edited
	viewport Viewport   // visible part of the buffer
	size     kilo.Size  // size of editing area
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

// ReadFile replaces the buffer with the contents of path and names the buffer after it.
func (e *Editor) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := e.Buffer.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.Buffer.SetFileName(path)
	e.Cursor = kilo.Point{}
	e.viewport = Viewport{}
	return nil
}

// WriteFile saves the buffer to path, overwriting it, and returns the number of lines written.
// An empty path means the buffer's own file name.
func (e *Editor) WriteFile(path string) (int, error) {
	if path == "" {
		path = e.Buffer.GetFileName()
	}
	if path == "" {
		return 0, ErrNoFileName
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	dirty := e.Buffer.dirty
	count, err := e.Buffer.Save(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		// the data may not have reached the disk
		e.Buffer.dirty = dirty
		return 0, cerr
	}
	if err != nil {
		return 0, err
	}
	e.Buffer.SetFileName(path)
	return count, nil
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

func (e *Editor) GetBuffer() *Buffer {
	return e.Buffer
}

func (e *Editor) GetCursor() kilo.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor kilo.Point) {
	e.Cursor = cursor
	e.KeepCursorInRow()
}

// SetSize sets the size of the text area.
func (e *Editor) SetSize(s kilo.Size) {
	e.size = s
}

func (e *Editor) GetSize() kilo.Size {
	return e.size
}

func (e *Editor) GetOffset() kilo.Size {
	return e.viewport.Offset
}

func (e *Editor) Perform(op kilo.Operation) {
	op.Perform(e)
}

// These editor primitives are called by operations.

func (e *Editor) InsertChar(c byte) {
	e.Buffer.InsertChar(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
	e.KeepCursorInRow()
}

func (e *Editor) InsertNewline() {
	e.Buffer.SplitLine(e.Cursor.Row, e.Cursor.Col)
	e.Cursor.Row++
	e.Cursor.Col = 0
	e.KeepCursorInRow()
}

func (e *Editor) BackspaceChar() {
	e.Cursor = e.Buffer.DeleteCharBefore(e.Cursor.Row, e.Cursor.Col)
	e.KeepCursorInRow()
}
