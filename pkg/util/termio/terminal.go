// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// DEFAULT_WIDTH is assumed when the terminal width cannot be determined.
const DEFAULT_WIDTH = uint(80)

// DEFAULT_HEIGHT is assumed when the terminal height cannot be determined.
const DEFAULT_HEIGHT = uint(24)

// Console provides line-based interaction with a terminal, such that the user
// can edit each line before it is submitted.
type Console struct {
	// file descriptor for input.
	fd int
	// Underlying terminal
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
}

// NewConsole constructs a new console which displays a given prompt before each
// line is read.  This moves the terminal into raw mode, hence the console must
// be restored once finished with.
func NewConsole(prompt string) (*Console, error) {
	fd := int(os.Stdin.Fd())
	//
	if !term.IsTerminal(fd) {
		return nil, errors.New("standard input is not a terminal")
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	return &Console{fd, term.NewTerminal(screen, prompt), state}, nil
}

// ReadLine reads the next line of input, returning io.EOF when the user ends
// input (e.g. with Ctrl-D).
func (t *Console) ReadLine() (string, error) {
	return t.xterm.ReadLine()
}

// Println writes a line of text to the terminal.  Newlines are translated for
// raw mode.
func (t *Console) Println(text string) error {
	_, err := t.xterm.Write([]byte(text + "\n"))
	//
	return err
}

// Restore terminal to its original state.
func (t *Console) Restore() error {
	return term.Restore(t.fd, t.state)
}

// IsTerminal determines whether the given file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// GetSize returns the dimensions (width then height) of the terminal attached to
// the given file, or a default size if it is not attached to one.
func GetSize(f *os.File) (uint, uint) {
	w, h, err := term.GetSize(int(f.Fd()))
	//
	if err != nil || w <= 0 || h <= 0 {
		return DEFAULT_WIDTH, DEFAULT_HEIGHT
	}
	//
	return uint(w), uint(h)
}
