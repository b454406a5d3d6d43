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
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/consensys/go-intcode/pkg/util/source"
	"github.com/pkg/errors"
)

// STRING_SOURCE is the filename reported for programs parsed directly from a
// string, rather than read from disk.
const STRING_SOURCE = "<input>"

// Parse a program listing into its sequence of words.  A listing is a
// comma-separated sequence of signed decimal integers without embedded
// whitespace.  Whitespace surrounding the listing as a whole (e.g. the
// trailing newline of a file) is ignored.  Any token which is not a valid
// 64bit integer produces a *source.SyntaxError identifying that token.
func Parse(text string) ([]int64, error) {
	return ParseFile(source.NewSourceFile(STRING_SOURCE, []byte(text)))
}

// ParseFile parses the contents of a given source file as a program listing
// (see Parse).
func ParseFile(file *source.File) ([]int64, error) {
	var (
		contents   = file.Contents()
		start, end = trimmed(contents)
		words      []int64
	)
	//
	for i := start; i <= end; i++ {
		// Scan to end of token
		j := i
		for j < end && contents[j] != ',' {
			j++
		}
		//
		word, err := parseWord(file, source.NewSpan(i, j))
		if err != nil {
			return nil, err
		}
		//
		words = append(words, word)
		i = j
	}
	//
	return words, nil
}

// ReadFile reads and parses a program listing from a file on disk, returning
// both the source file (e.g. for error reporting) and the parsed words.
func ReadFile(filename string) (*source.File, []int64, error) {
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading program %s", filename)
	}
	//
	file := source.NewSourceFile(filename, bytes)
	words, err := ParseFile(file)
	//
	return file, words, err
}

// Format a sequence of words as a program listing (i.e. comma-separated
// decimal integers).  This is the inverse of Parse.
func Format(words []int64) string {
	var builder strings.Builder
	//
	for i, w := range words {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(strconv.FormatInt(w, 10))
	}
	//
	return builder.String()
}

func parseWord(file *source.File, span source.Span) (int64, error) {
	token := string(file.Contents()[span.Start():span.End()])
	//
	if token == "" {
		return 0, file.SyntaxError(span, "missing integer")
	}
	//
	word, err := strconv.ParseInt(token, 10, 64)
	//
	if errors.Is(err, strconv.ErrRange) {
		return 0, file.SyntaxError(span, "integer out of range")
	} else if err != nil {
		return 0, file.SyntaxError(span, "invalid integer")
	}
	//
	return word, nil
}

// Determine the region of the contents left after stripping leading and
// trailing whitespace, as [start,end).
func trimmed(contents []rune) (int, int) {
	var start, end = 0, len(contents)
	//
	for start < end && unicode.IsSpace(contents[start]) {
		start++
	}
	//
	for end > start && unicode.IsSpace(contents[end-1]) {
		end--
	}
	//
	return start, end
}
