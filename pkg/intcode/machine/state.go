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
package machine

import "fmt"

// State reports the outcome of the most recent step taken by an engine.
type State uint8

// NEXT indicates the engine can continue executing.
const NEXT State = 0

// WAIT indicates the engine is suspended at an input instruction, because its
// input queue is empty.  Execution resumes from the same instruction once a
// value has been supplied.
const WAIT State = 1

// EXIT indicates the engine has halted.  This is sticky: every subsequent step
// also reports EXIT until the engine is reset.
const EXIT State = 2

func (p State) String() string {
	switch p {
	case NEXT:
		return "next"
	case WAIT:
		return "wait"
	case EXIT:
		return "exit"
	default:
		return fmt.Sprintf("state%d", uint8(p))
	}
}
