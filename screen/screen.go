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
package screen

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	kilo "github.com/timburks/kilo/types"
)

// ErrKeyRead is returned when the terminal stops delivering input.
var ErrKeyRead = errors.New("unable to read keypress")

// The Screen draws RenderPlans and reads input events.
// The terminal is in raw mode from NewScreen until Close.
type Screen struct {
	size kilo.Size // screen size
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &Screen{}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Size() kilo.Size {
	s.size.Cols, s.size.Rows = termbox.Size()
	return s.size
}

func (s *Screen) Render(plan kilo.RenderPlan) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	for i, line := range plan.Rows {
		s.drawLine(i, line, termbox.ColorDefault, termbox.ColorDefault)
	}
	textRows := len(plan.Rows)
	s.drawLine(textRows, plan.Status, termbox.ColorBlack, termbox.ColorWhite)
	s.drawLine(textRows+1, plan.Message, termbox.ColorDefault, termbox.ColorDefault)
	termbox.SetCursor(plan.Cursor.Col, plan.Cursor.Row)
	return termbox.Flush()
}

func (s *Screen) drawLine(row int, line string, fg, bg termbox.Attribute) {
	x := 0
	for _, ch := range line {
		termbox.SetCell(x, row, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
}

// GetNextEvent blocks until the terminal delivers an event.
func (s *Screen) GetNextEvent() (*kilo.Event, error) {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventError:
			return nil, fmt.Errorf("%w: %w", ErrKeyRead, event.Err)
		case termbox.EventKey:
			return &kilo.Event{
				Type: kilo.EventKey,
				Key:  key(event.Key, event.Ch),
				Ch:   event.Ch,
			}, nil
		case termbox.EventResize:
			return &kilo.Event{Type: kilo.EventResize}, nil
		}
	}
}

func key(k termbox.Key, ch rune) kilo.Key {
	if ch != 0 {
		return kilo.KeyNone
	}
	switch k {
	case termbox.KeyArrowDown:
		return kilo.KeyArrowDown
	case termbox.KeyArrowLeft:
		return kilo.KeyArrowLeft
	case termbox.KeyArrowRight:
		return kilo.KeyArrowRight
	case termbox.KeyArrowUp:
		return kilo.KeyArrowUp
	case termbox.KeyHome:
		return kilo.KeyHome
	case termbox.KeyEnd:
		return kilo.KeyEnd
	case termbox.KeyPgup:
		return kilo.KeyPgup
	case termbox.KeyPgdn:
		return kilo.KeyPgdn
	case termbox.KeyEnter:
		return kilo.KeyEnter
	case termbox.KeyBackspace, termbox.KeyBackspace2: // KeyBackspace is also Ctrl-H
		return kilo.KeyBackspace
	case termbox.KeyDelete:
		return kilo.KeyDelete
	case termbox.KeyEsc:
		return kilo.KeyEsc
	case termbox.KeyTab:
		return kilo.KeyTab
	case termbox.KeySpace:
		return kilo.KeySpace
	case termbox.KeyCtrlQ:
		return kilo.KeyCtrlQ
	case termbox.KeyCtrlS:
		return kilo.KeyCtrlS
	case termbox.KeyCtrlL:
		return kilo.KeyCtrlL
	default:
		return kilo.KeyUnsupported
	}
}
