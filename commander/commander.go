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
package commander

import (
	"fmt"
	"log"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/timburks/kilo/editor"
	"github.com/timburks/kilo/operations"
	kilo "github.com/timburks/kilo/types"
)

const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit"

// The Commander converts user input into commands for the Editor.
// It owns the session state around the editor: the status message, the
// quit-confirmation counter and the save-as prompt.
type Commander struct {
	editor         *editor.Editor
	state          int           // running, prompting or terminated
	version        string        // shown in the welcome banner
	message        string        // status message
	messageTime    time.Time     // when the status message was set
	messageTimeout time.Duration // how long a status message stays visible
	quitTimes      int           // quit requests left before a forced quit
	prompt         string        // file name as it is being typed
	now            func() time.Time
}

func NewCommander(e *editor.Editor, quitTimes int, messageTimeout time.Duration) *Commander {
	c := &Commander{
		editor:         e,
		state:          kilo.StateRunning,
		messageTimeout: messageTimeout,
		quitTimes:      quitTimes,
		now:            time.Now,
	}
	c.SetMessage(HelpMessage)
	return c
}

func (c *Commander) SetVersion(v string) {
	c.version = v
}

func (c *Commander) GetState() int {
	return c.state
}

func (c *Commander) IsRunning() bool {
	return c.state != kilo.StateTerminated
}

func (c *Commander) GetQuitTimes() int {
	return c.quitTimes
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

func (c *Commander) SetMessage(format string, args ...any) {
	c.message = fmt.Sprintf(format, args...)
	c.messageTime = c.now()
}

// GetMessage returns the status message, or "" once it has expired.
func (c *Commander) GetMessage() string {
	if c.now().Sub(c.messageTime) >= c.messageTimeout {
		return ""
	}
	return c.message
}

// Plan lays out one frame for a terminal of the given size.
// Two rows are reserved for the status and message bars.
func (c *Commander) Plan(size kilo.Size) kilo.RenderPlan {
	e := c.editor
	editSize := size
	editSize.Rows -= 2
	if editSize.Rows < 0 {
		editSize.Rows = 0
	}
	e.SetSize(editSize)
	e.Scroll()

	var line string
	if c.state == kilo.StatePrompt {
		line = c.promptText()
	} else {
		line = c.GetMessage()
	}
	return kilo.RenderPlan{
		Size:    size,
		Rows:    e.RenderRows(c.version),
		Status:  e.StatusBar(size.Cols),
		Message: runewidth.Truncate(line, size.Cols, ""),
		Cursor:  e.ScreenCursor(),
	}
}

func (c *Commander) promptText() string {
	return fmt.Sprintf("Save as: %s (ESC to cancel)", c.prompt)
}

func (c *Commander) ProcessEvent(event *kilo.Event) error {
	switch event.Type {
	case kilo.EventKey:
		return c.ProcessKey(event)
	case kilo.EventResize:
		// the next Plan picks up the new size
		return nil
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *kilo.Event) error {
	switch c.state {
	case kilo.StateRunning:
		return c.ProcessKeyEditMode(event)
	case kilo.StatePrompt:
		return c.ProcessKeyPromptMode(event)
	}
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *kilo.Event) error {
	e := c.editor
	switch event.Key {
	case kilo.KeyCtrlQ:
		c.Quit()
	case kilo.KeyCtrlS:
		return c.Save()
	case kilo.KeyArrowUp:
		e.MoveCursor(kilo.MoveUp)
	case kilo.KeyArrowDown:
		e.MoveCursor(kilo.MoveDown)
	case kilo.KeyArrowLeft:
		e.MoveCursor(kilo.MoveLeft)
	case kilo.KeyArrowRight:
		e.MoveCursor(kilo.MoveRight)
	case kilo.KeyHome:
		e.MoveCursor(kilo.MoveHome)
	case kilo.KeyEnd:
		e.MoveCursor(kilo.MoveEnd)
	case kilo.KeyPgup:
		e.MoveCursor(kilo.MovePageUp)
	case kilo.KeyPgdn:
		e.MoveCursor(kilo.MovePageDown)
	case kilo.KeyEnter:
		e.Perform(&operations.InsertNewline{})
	case kilo.KeyBackspace:
		e.Perform(&operations.Backspace{})
	case kilo.KeyDelete:
		e.Perform(&operations.DeleteCharacter{})
	case kilo.KeySpace:
		e.Perform(&operations.InsertCharacter{Character: ' '})
	case kilo.KeyNone:
		if printable(event.Ch) {
			e.Perform(&operations.InsertCharacter{Character: event.Ch})
		}
	}
	return nil
}

func (c *Commander) ProcessKeyPromptMode(event *kilo.Event) error {
	switch event.Key {
	case kilo.KeyEsc:
		c.state = kilo.StateRunning
		c.prompt = ""
		c.SetMessage("Save aborted")
	case kilo.KeyEnter:
		if c.prompt == "" {
			return nil
		}
		filename := c.prompt
		c.prompt = ""
		c.state = kilo.StateRunning
		return c.writeFile(filename)
	case kilo.KeyBackspace:
		if len(c.prompt) > 0 {
			_, size := utf8.DecodeLastRuneInString(c.prompt)
			c.prompt = c.prompt[0 : len(c.prompt)-size]
		}
	case kilo.KeySpace:
		c.prompt += " "
	case kilo.KeyNone:
		if printable(event.Ch) {
			c.prompt += string(event.Ch)
		}
	}
	return nil
}

// Quit ends the session unless there are unsaved changes. With unsaved
// changes each request uses up one confirmation; a request that finds none
// left ends the session anyway.
func (c *Commander) Quit() {
	if c.editor.GetBuffer().Dirty() == 0 || c.quitTimes <= 0 {
		c.state = kilo.StateTerminated
		return
	}
	c.quitTimes--
	c.SetMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", c.quitTimes)
}

// Save writes the buffer to its file, or asks for a name when it has none.
func (c *Commander) Save() error {
	filename := c.editor.GetBuffer().GetFileName()
	if filename == "" {
		c.state = kilo.StatePrompt
		c.prompt = ""
		return nil
	}
	return c.writeFile(filename)
}

func (c *Commander) writeFile(filename string) error {
	count, err := c.editor.WriteFile(filename)
	if err != nil {
		c.SetMessage("Can't save! I/O error: %s", err)
		return fmt.Errorf("saving %s: %w", filename, err)
	}
	log.Printf("wrote %d lines to %s", count, filename)
	c.SetMessage("%s %dL written", filename, count)
	return nil
}

func printable(ch rune) bool {
	return ch != 0 && !unicode.IsControl(ch)
}

// A Terminal draws frames and delivers input events.
type Terminal interface {
	Size() kilo.Size
	Render(plan kilo.RenderPlan) error
	GetNextEvent() (*kilo.Event, error)
}

// Run renders, reads one event and dispatches it until the session ends.
// Failing to draw or to read input ends the session with an error.
func (c *Commander) Run(t Terminal) error {
	for c.IsRunning() {
		if err := t.Render(c.Plan(t.Size())); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
		event, err := t.GetNextEvent()
		if err != nil {
			log.Printf("%v", err)
			return err
		}
		if err := c.ProcessEvent(event); err != nil {
			log.Printf("%v", err)
		}
	}
	return nil
}
