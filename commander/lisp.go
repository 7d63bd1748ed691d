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
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"
)

// the commander that lisp primitives act on while a script runs
var scripted *Commander

func init() {
	golisp.MakePrimitiveFunction("set-message", "1", SetMessageImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("file-name", "0", FileNameImpl)
	golisp.MakePrimitiveFunction("dirty-count", "0", DirtyCountImpl)
}

func SetMessageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("set-message requires a string argument")
	}
	if scripted == nil {
		return nil, errors.New("set-message: no editor session")
	}
	scripted.SetMessage("%s", golisp.StringValue(val))
	return val, nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if scripted == nil {
		return nil, errors.New("line-count: no editor session")
	}
	return golisp.IntegerWithValue(int64(scripted.editor.GetBuffer().GetRowCount())), nil
}

func FileNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if scripted == nil {
		return nil, errors.New("file-name: no editor session")
	}
	return golisp.StringWithValue(scripted.editor.GetBuffer().GetFileName()), nil
}

func DirtyCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if scripted == nil {
		return nil, errors.New("dirty-count: no editor session")
	}
	return golisp.IntegerWithValue(int64(scripted.editor.GetBuffer().Dirty())), nil
}

// ParseEval evaluates a script against this commander's session.
func (c *Commander) ParseEval(script string) error {
	scripted = c
	defer func() { scripted = nil }()
	_, err := golisp.ParseAndEval("(begin\n" + script + "\n)")
	if err != nil {
		return fmt.Errorf("evaluating script: %w", err)
	}
	return nil
}

// ParseEvalFile evaluates the script at path. A missing file is not an error.
func (c *Commander) ParseEvalFile(path string) error {
	if path == "" {
		return nil
	}
	script, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("evaluating %s", path)
	if err := c.ParseEval(string(script)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
