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
package program

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/consensys/go-intcode/pkg/util/source"
)

func Test_Parse_00(t *testing.T) {
	check_Parse(t, "99", 99)
}

func Test_Parse_01(t *testing.T) {
	check_Parse(t, "1,0,0,0,99", 1, 0, 0, 0, 99)
}

func Test_Parse_02(t *testing.T) {
	check_Parse(t, "1101,100,-1,4,0", 1101, 100, -1, 4, 0)
}

func Test_Parse_03(t *testing.T) {
	check_Parse(t, "104,1125899906842624,99", 104, 1125899906842624, 99)
}

func Test_Parse_04(t *testing.T) {
	// Trailing newline of a file is accepted
	check_Parse(t, "3,9,8,9,10,9,4,9,99,-1,8\n", 3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8)
}

func Test_Parse_05(t *testing.T) {
	check_ParseError(t, "", 0, 0)
}

func Test_Parse_06(t *testing.T) {
	check_ParseError(t, "1,x,3", 2, 3)
}

func Test_Parse_07(t *testing.T) {
	check_ParseError(t, "1,2,", 4, 4)
}

func Test_Parse_08(t *testing.T) {
	check_ParseError(t, "1,,2", 2, 2)
}

func Test_Parse_09(t *testing.T) {
	// Embedded whitespace is not permitted
	check_ParseError(t, "1, 2", 2, 4)
}

func Test_Parse_10(t *testing.T) {
	check_ParseError(t, "1,99999999999999999999", 2, 22)
}

func Test_Parse_11(t *testing.T) {
	check_ParseError(t, "1.5", 0, 3)
}

func Test_Format_00(t *testing.T) {
	for _, text := range []string{"99", "1,0,0,0,99", "109,-1,204,1125899906842624"} {
		words, err := Parse(text)
		//
		if err != nil {
			t.Fatal(err)
		} else if Format(words) != text {
			t.Errorf("expected %s, got %s", text, Format(words))
		}
	}
	//
	if Format(nil) != "" {
		t.Errorf("expected empty listing")
	}
}

func Test_ReadFile_00(t *testing.T) {
	var filename = filepath.Join(t.TempDir(), "prog.txt")
	//
	if err := os.WriteFile(filename, []byte("1,0,0,0,99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	//
	file, words, err := ReadFile(filename)
	//
	if err != nil {
		t.Fatal(err)
	} else if file.Filename() != filename {
		t.Errorf("unexpected filename %s", file.Filename())
	} else if !slices.Equal(words, []int64{1, 0, 0, 0, 99}) {
		t.Errorf("unexpected words %v", words)
	}
}

func Test_ReadFile_01(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	//
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func Test_ReadFile_02(t *testing.T) {
	var (
		filename = filepath.Join(t.TempDir(), "bad.txt")
		synErr   *source.SyntaxError
	)
	//
	if err := os.WriteFile(filename, []byte("1,0,\n0,99"), 0o644); err != nil {
		t.Fatal(err)
	}
	//
	_, _, err := ReadFile(filename)
	//
	if !errors.As(err, &synErr) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	//
	line := synErr.FirstEnclosingLine()
	//
	if line.Number() != 1 || line.String() != "1,0," {
		t.Errorf("unexpected enclosing line %d: %q", line.Number(), line.String())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Parse(t *testing.T, text string, expected ...int64) {
	words, err := Parse(text)
	//
	if err != nil {
		t.Errorf("unexpected error parsing %q: %s", text, err)
	} else if !slices.Equal(words, expected) {
		t.Errorf("parsing %q: expected %v, got %v", text, expected, words)
	}
}

func check_ParseError(t *testing.T, text string, start, end int) {
	var synErr *source.SyntaxError
	//
	_, err := Parse(text)
	//
	if !errors.As(err, &synErr) {
		t.Fatalf("parsing %q: expected syntax error, got %v", text, err)
	}
	//
	span := synErr.Span()
	//
	if span.Start() != start || span.End() != end {
		t.Errorf("parsing %q: expected span [%d,%d), got [%d,%d)", text, start, end, span.Start(), span.End())
	}
}
