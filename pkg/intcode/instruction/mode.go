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
package instruction

import "fmt"

// Mode determines how the raw value of an operand is interpreted.
type Mode uint8

// POSITION indicates the operand is the address of its value.
const POSITION Mode = 0

// IMMEDIATE indicates the operand is its value.
const IMMEDIATE Mode = 1

// RELATIVE indicates the operand is an offset from the relative base, which
// gives the address of its value.
const RELATIVE Mode = 2

func (p Mode) String() string {
	switch p {
	case POSITION:
		return "position"
	case IMMEDIATE:
		return "immediate"
	case RELATIVE:
		return "relative"
	default:
		return fmt.Sprintf("mode%d", uint8(p))
	}
}
