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
	"unicode/utf8"

	kilo "github.com/timburks/kilo/types"
)

// InsertCharacter inserts a character at the cursor.
// Text is byte-indexed, so a multi-byte character is inserted one byte at a time
// and the cursor advances once per byte.
type InsertCharacter struct {
	operation
	Character rune
}

func (op *InsertCharacter) Perform(e kilo.Editor) {
	op.init(e)
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], op.Character)
	for _, b := range buf[:n] {
		e.InsertChar(b)
	}
}

// InsertNewline splits the line at the cursor and moves to the start of the new line.
type InsertNewline struct {
	operation
}

func (op *InsertNewline) Perform(e kilo.Editor) {
	op.init(e)
	e.InsertNewline()
}
