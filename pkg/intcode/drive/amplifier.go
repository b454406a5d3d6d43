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
	"github.com/consensys/go-intcode/pkg/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// RunChain runs a pipeline of amplifiers, one per phase setting, where each is
// a fresh copy of the given engine.  Each amplifier receives its phase setting
// followed by the signal produced by its predecessor (or zero for the first),
// and the signal produced by the last amplifier is returned.
func RunChain(engine *machine.Engine, phases []int64) (int64, error) {
	var signal int64
	//
	for i, phase := range phases {
		amp := engine.Clone()
		amp.Reset()
		amp.PushInputs(phase, signal)
		//
		if _, err := amp.Run(); err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", i)
		}
		//
		output := amp.PopOutput()
		//
		if output.IsEmpty() {
			return 0, errors.Errorf("amplifier %d produced no signal", i)
		}
		//
		signal = output.Unwrap()
	}
	//
	return signal, nil
}

// RunFeedback runs a ring of amplifiers, one per phase setting, where each is a
// fresh copy of the given engine.  Every output of an amplifier is forwarded as
// input to its successor, with the last feeding back into the first.  Each
// amplifier is run in turn until it suspends, and this repeats until the last
// amplifier halts.  The last signal it produced is returned.
func RunFeedback(engine *machine.Engine, phases []int64) (int64, error) {
	var (
		n      = len(phases)
		amps   = make([]*machine.Engine, n)
		signal = util.None[int64]()
	)
	//
	if n == 0 {
		return 0, errors.New("empty feedback ring")
	}
	//
	for i, phase := range phases {
		amps[i] = engine.Clone()
		amps[i].Reset()
		amps[i].PushInput(phase)
	}
	// Initial signal
	amps[0].PushInput(0)
	//
	for round := 0; ; round++ {
		var progress bool
		//
		for i, amp := range amps {
			before := amp.Steps()
			state, err := amp.Run()
			//
			if err != nil {
				return 0, errors.Wrapf(err, "amplifier %d (round %d)", i, round)
			}
			//
			outputs := amp.Outputs()
			progress = progress || amp.Steps() != before
			//
			if len(outputs) > 0 && i == n-1 {
				signal = util.Some(outputs[len(outputs)-1])
			}
			//
			amps[(i+1)%n].PushInputs(outputs...)
			//
			if i == n-1 && state == machine.EXIT {
				log.Debugf("feedback ring halted after %d rounds", round+1)
				//
				if v, ok := signal.Get(); ok {
					return v, nil
				}
				//
				return 0, errors.New("feedback ring produced no signal")
			}
		}
		//
		if !progress {
			return 0, errors.Errorf("feedback ring deadlocked in round %d", round)
		}
	}
}

// MaxSignal determines the highest signal produced by any ordering of the given
// phase settings, using either a chain or a feedback ring of amplifiers.  This
// returns the signal together with the ordering which produced it.
func MaxSignal(engine *machine.Engine, phases []int64, feedback bool) (int64, []int64, error) {
	var (
		best  = util.None[int64]()
		order []int64
		err   error
		run   = RunChain
	)
	//
	if feedback {
		run = RunFeedback
	}
	//
	util.Permutations(phases, func(perm []int64) bool {
		var signal int64
		//
		if signal, err = run(engine, perm); err != nil {
			err = errors.Wrapf(err, "phases %v", perm)
			return false
		}
		//
		if best.IsEmpty() || signal > best.Unwrap() {
			best = util.Some(signal)
			order = perm
		}
		//
		return true
	})
	//
	if err != nil {
		return 0, nil, err
	} else if best.IsEmpty() {
		return 0, nil, errors.New("no phase settings")
	}
	//
	return best.Unwrap(), order, nil
}
