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
package operations

import (
	"testing"

	"github.com/stretchr/testify/require"
	kilo "github.com/timburks/kilo/types"
)

// recorder is an editor that remembers the primitives it was asked to perform.
type recorder struct {
	cursor kilo.Point
	calls  []string
	bytes  []byte
}

func (r *recorder) GetCursor() kilo.Point       { return r.cursor }
func (r *recorder) SetCursor(cursor kilo.Point) { r.cursor = cursor }
func (r *recorder) InsertNewline()              { r.calls = append(r.calls, "newline") }
func (r *recorder) BackspaceChar()              { r.calls = append(r.calls, "backspace") }

func (r *recorder) MoveCursor(direction int) {
	if direction == kilo.MoveRight {
		r.calls = append(r.calls, "right")
	}
}

func (r *recorder) InsertChar(c byte) {
	r.calls = append(r.calls, "insert")
	r.bytes = append(r.bytes, c)
	r.cursor.Col++
}

func TestInsertCharacter(t *testing.T) {
	r := &recorder{cursor: kilo.Point{Row: 2, Col: 3}}
	op := &InsertCharacter{Character: 'x'}
	op.Perform(r)
	require.Equal(t, []string{"insert"}, r.calls)
	require.Equal(t, []byte("x"), r.bytes)
	require.Equal(t, kilo.Point{Row: 2, Col: 3}, op.Cursor)
}

func TestInsertCharacterMultiByte(t *testing.T) {
	r := &recorder{}
	(&InsertCharacter{Character: '€'}).Perform(r)
	require.Equal(t, []byte("€"), r.bytes)
	require.Len(t, r.calls, 3)
	require.Equal(t, 3, r.cursor.Col)
}

func TestInsertNewline(t *testing.T) {
	r := &recorder{}
	(&InsertNewline{}).Perform(r)
	require.Equal(t, []string{"newline"}, r.calls)
}

func TestBackspace(t *testing.T) {
	r := &recorder{}
	(&Backspace{}).Perform(r)
	require.Equal(t, []string{"backspace"}, r.calls)
}

func TestDeleteCharacterStepsRightThenBackspaces(t *testing.T) {
	r := &recorder{}
	(&DeleteCharacter{}).Perform(r)
	require.Equal(t, []string{"right", "backspace"}, r.calls)
}
