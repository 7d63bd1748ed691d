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
package types

// Session states
const (
	StateRunning    = 0
	StatePrompt     = 1
	StateTerminated = 9999
)

// Move directions
const (
	MoveUp       = 0
	MoveDown     = 1
	MoveRight    = 2
	MoveLeft     = 3
	MoveHome     = 4
	MoveEnd      = 5
	MovePageUp   = 6
	MovePageDown = 7
)

// A Point is a zero-based (row, column) position in the buffer or on the screen.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Operation is an edit action performed by the editor.
type Operation interface {
	Perform(e Editor)
}

// Editor is the set of primitives that operations use.
type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	MoveCursor(direction int)

	InsertChar(c byte)
	InsertNewline()
	BackspaceChar()
}

// RenderPlan describes one frame: what the Terminal should draw and
// where it should put the cursor.
type RenderPlan struct {
	Size    Size     // full terminal size
	Rows    []string // text area, one entry per visible row
	Status  string   // status bar, already padded to the terminal width
	Message string   // message bar, blank when the message has expired
	Cursor  Point    // cursor position on the screen
}
