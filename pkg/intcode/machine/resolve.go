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

import (
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// AddressError reports an operand which resolved to a negative address, or a
// write to an address beyond memory.MAX_ADDRESS.
type AddressError struct {
	// Cursor of the offending instruction.
	Cursor uint
	// Address which was computed.
	Address int64
}

// Error implements the error interface.
func (p *AddressError) Error() string {
	if p.Address < 0 {
		return fmt.Sprintf("negative address %d (instruction at %d)", p.Address, p.Cursor)
	}
	//
	return fmt.Sprintf("address %d exceeds limit %d (instruction at %d)", p.Address, memory.MAX_ADDRESS, p.Cursor)
}

// load the value of a read operand.  Immediate operands are their own value,
// whilst others identify the address holding it.
func (p *Engine) load(operand instruction.Operand) (int64, error) {
	if operand.Mode == instruction.IMMEDIATE {
		return operand.Value, nil
	}
	//
	address, err := p.address(operand)
	//
	if err != nil {
		return 0, err
	}
	//
	return p.memory.Read(address), nil
}

// store a value at the address identified by a write operand.
func (p *Engine) store(operand instruction.Operand, value int64) error {
	address, err := p.destination(operand)
	//
	if err != nil {
		return err
	}
	//
	p.memory.Write(address, value)
	//
	return nil
}

// destination determines the address identified by a write operand, which
// must not exceed memory.MAX_ADDRESS.
func (p *Engine) destination(operand instruction.Operand) (uint, error) {
	address, err := p.address(operand)
	//
	if err != nil {
		return 0, err
	} else if address > memory.MAX_ADDRESS {
		return 0, &AddressError{p.cursor, int64(address)}
	}
	//
	return address, nil
}

// address determines the location identified by a position or relative
// operand.
func (p *Engine) address(operand instruction.Operand) (uint, error) {
	var address = operand.Value
	//
	switch operand.Mode {
	case instruction.RELATIVE:
		address += p.base
	case instruction.IMMEDIATE:
		// Rejected by the decoder for destinations, and handled by load for
		// sources.
		panic("immediate operand has no address")
	}
	//
	if address < 0 {
		return 0, &AddressError{p.cursor, address}
	}
	//
	return uint(address), nil
}
