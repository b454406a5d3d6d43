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
package drive

import (
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// NOUN_ADDRESS is the location of the first boot parameter.
const NOUN_ADDRESS = 1

// VERB_ADDRESS is the location of the second boot parameter.
const VERB_ADDRESS = 2

// RunBoot sets the boot parameters of a given engine, runs it to completion and
// returns the value left at address zero.  The program must not require any
// input.
func RunBoot(engine *machine.Engine, noun int64, verb int64) (int64, error) {
	if err := engine.Poke(NOUN_ADDRESS, noun); err != nil {
		return 0, errors.Wrap(err, "setting noun")
	} else if err := engine.Poke(VERB_ADDRESS, verb); err != nil {
		return 0, errors.Wrap(err, "setting verb")
	}
	//
	state, err := engine.Run()
	//
	if err != nil {
		return 0, errors.Wrapf(err, "booting with noun %d and verb %d", noun, verb)
	} else if state != machine.EXIT {
		return 0, errors.Errorf("booting with noun %d and verb %d: program waiting for input", noun, verb)
	}
	//
	return engine.PeekMemory(0), nil
}

// SearchBoot tries every pair of boot parameters below a given limit, looking
// for the pair which leaves the target value at address zero.  The result is
// encoded as 100*noun + verb.  Each attempt runs on a fresh copy of the
// engine's initial state, such that the engine itself is never modified.
// Parameter pairs for which the program fails are skipped.
func SearchBoot(engine *machine.Engine, target int64, limit int64) (int64, error) {
	var pristine = engine.Clone()
	//
	pristine.Reset()
	//
	for noun := int64(0); noun < limit; noun++ {
		for verb := int64(0); verb < limit; verb++ {
			result, err := RunBoot(pristine.Clone(), noun, verb)
			//
			if err != nil {
				log.Debugf("skipping boot parameters: %s", err)
			} else if result == target {
				log.Debugf("found boot parameters noun=%d verb=%d", noun, verb)
				//
				return 100*noun + verb, nil
			}
		}
	}
	//
	return 0, errors.Errorf("no boot parameters below %d produce %d", limit, target)
}
