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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timburks/kilo/commander"
	"github.com/timburks/kilo/config"
	"github.com/timburks/kilo/editor"
	"github.com/timburks/kilo/screen"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:          "kilo [file]",
	Short:        "A small screen editor for the terminal",
	Long:         `kilo opens a file (or an empty buffer) in a full-screen terminal editor. Ctrl-S saves, Ctrl-Q quits.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runEditor,
}

// SetVersion sets the version string shown by --version and the welcome banner.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func Execute() error {
	return rootCmd.Execute()
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return err
	}

	// Open a log file; the terminal belongs to the editor.
	closeLog := openLog(cfg.LogFile)
	defer closeLog()

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	if len(args) == 1 {
		if err := openFile(e, args[0]); err != nil {
			return err
		}
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, cfg.QuitTimes, cfg.MessageTimeout)
	c.SetVersion(version)
	if err := c.ParseEvalFile(cfg.InitScript); err != nil {
		log.Printf("%v", err)
	}

	// Create a screen to manage display; Close restores the terminal on every path out.
	s, err := screen.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer s.Close()

	return c.Run(s)
}

// openFile loads filename into the editor. A file that does not exist yet
// gives an empty buffer with that name; it is created on the first save.
func openFile(e *editor.Editor, filename string) error {
	err := e.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		e.GetBuffer().SetFileName(filename)
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("read %d lines from %s", e.GetBuffer().GetRowCount(), filename)
	return nil
}

func openLog(path string) func() {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }
}
