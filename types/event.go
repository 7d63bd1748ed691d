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

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

// Key is an abstract key symbol, independent of the terminal library.
type Key int

const (
	KeyNone Key = iota // a plain character; see Event.Ch
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyEsc
	KeyTab
	KeySpace
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlL
	KeyUnsupported
)

var keyNames = map[Key]string{
	KeyNone:        "none",
	KeyArrowUp:     "up",
	KeyArrowDown:   "down",
	KeyArrowLeft:   "left",
	KeyArrowRight:  "right",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyPgup:        "pgup",
	KeyPgdn:        "pgdn",
	KeyEnter:       "enter",
	KeyBackspace:   "backspace",
	KeyDelete:      "delete",
	KeyEsc:         "esc",
	KeyTab:         "tab",
	KeySpace:       "space",
	KeyCtrlQ:       "ctrl+q",
	KeyCtrlS:       "ctrl+s",
	KeyCtrlL:       "ctrl+l",
	KeyUnsupported: "unsupported",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

type Event struct {
	Type int
	Key  Key
	Ch   rune
}
