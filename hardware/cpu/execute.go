// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/faults"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
)

// ExecuteInstruction fetches, decodes and executes the instruction at the
// program counter.
//
// If the CPU is waiting for a keypress then nothing is executed and the
// result has the AwaitingKeypress effect.
func (mc *CPU) ExecuteInstruction() (execution.Result, error) {
	address := mc.PC

	word := instructions.Fetch(mc.mem.Read(address), mc.mem.Read(address+1))
	op := instructions.Decode(word)

	res := execution.Result{
		Address:   address,
		Opcode:    op,
		Operation: op.Operation(),
	}

	if mc.Waiting {
		res.Effects = execution.AwaitingKeypress
		res.WaitRegister = mc.WaitRegister
		return res, nil
	}

	mc.PC = (mc.PC + 2) & memory.AddressMask

	if err := mc.execute(&res); err != nil {
		mc.PC = address
		mc.Faults.Add(*err)
		logger.Log(mc.instance, "cpu", err)
		return res, *err
	}

	mc.count++
	mc.LastResult = res

	return res, nil
}

// skip the next instruction if the condition is true.
func (mc *CPU) skip(cond bool) {
	if cond {
		mc.PC = (mc.PC + 2) & memory.AddressMask
	}
}

// quirks are read for every instruction so that they can be changed while the
// program is running
func quirk(p *prefs.Bool) bool {
	b, _ := p.Get().(bool)
	return b
}

func (mc *CPU) execute(res *execution.Result) *faults.Fault {
	op := res.Opcode

	fault := func(c faults.Category) *faults.Fault {
		return &faults.Fault{
			Category: c,
			Address:  res.Address,
			Opcode:   op.Word,
		}
	}

	switch res.Operation {
	case instructions.SYS:
		logger.Logf(mc.instance, "cpu", "SYS %03x at %03x ignored", op.NNN, res.Address)

	case instructions.CLS:
		mc.fb.Clear()
		res.Effects |= execution.RedrawRequested

	case instructions.RET:
		a, ok := mc.Stack.Pop()
		if !ok {
			return fault(faults.StackUnderflow)
		}
		mc.PC = a

	case instructions.JP:
		mc.PC = op.NNN

	case instructions.CALL:
		if !mc.Stack.Push(mc.PC) {
			return fault(faults.StackOverflow)
		}
		mc.PC = op.NNN

	case instructions.SE:
		mc.skip(mc.V[op.X] == op.NN)

	case instructions.SNE:
		mc.skip(mc.V[op.X] != op.NN)

	case instructions.SEV:
		mc.skip(mc.V[op.X] == mc.V[op.Y])

	case instructions.SNEV:
		mc.skip(mc.V[op.X] != mc.V[op.Y])

	case instructions.LD:
		mc.V[op.X] = op.NN

	case instructions.ADD:
		// the flags register is not affected
		mc.V[op.X] += op.NN

	case instructions.LDV:
		mc.V[op.X] = mc.V[op.Y]

	case instructions.OR:
		mc.V[op.X] |= mc.V[op.Y]
		if quirk(&mc.instance.Prefs.Quirks.VFReset) {
			mc.V[VF] = 0
		}

	case instructions.AND:
		mc.V[op.X] &= mc.V[op.Y]
		if quirk(&mc.instance.Prefs.Quirks.VFReset) {
			mc.V[VF] = 0
		}

	case instructions.XOR:
		mc.V[op.X] ^= mc.V[op.Y]
		if quirk(&mc.instance.Prefs.Quirks.VFReset) {
			mc.V[VF] = 0
		}

	// for the following instructions the flag is written after the result so
	// that the flag takes priority when X is the flags register

	case instructions.ADDV:
		sum := uint16(mc.V[op.X]) + uint16(mc.V[op.Y])
		mc.V[op.X] = uint8(sum)
		mc.V[VF] = flag(sum > 0xff)

	case instructions.SUB:
		vx, vy := mc.V[op.X], mc.V[op.Y]
		mc.V[op.X] = vx - vy
		mc.V[VF] = flag(vx >= vy)

	case instructions.SUBN:
		vx, vy := mc.V[op.X], mc.V[op.Y]
		mc.V[op.X] = vy - vx
		mc.V[VF] = flag(vy >= vx)

	case instructions.SHR:
		v := mc.V[op.X]
		if quirk(&mc.instance.Prefs.Quirks.ShiftVY) {
			v = mc.V[op.Y]
		}
		mc.V[op.X] = v >> 1
		mc.V[VF] = v & 0x01

	case instructions.SHL:
		v := mc.V[op.X]
		if quirk(&mc.instance.Prefs.Quirks.ShiftVY) {
			v = mc.V[op.Y]
		}
		mc.V[op.X] = v << 1
		mc.V[VF] = v >> 7

	case instructions.LDI:
		mc.I = op.NNN

	case instructions.JPV0:
		r := uint8(0)
		if quirk(&mc.instance.Prefs.Quirks.JumpVX) {
			r = op.X
		}
		mc.PC = (op.NNN + uint16(mc.V[r])) & memory.AddressMask

	case instructions.RND:
		mc.V[op.X] = mc.instance.Random.Byte() & op.NN

	case instructions.DRW:
		sprite := make([]uint8, op.N)
		for i := range sprite {
			sprite[i] = mc.mem.Read(mc.I + uint16(i))
		}
		mc.V[VF] = flag(mc.fb.DrawSprite(mc.V[op.X], mc.V[op.Y], sprite))
		res.Effects |= execution.RedrawRequested

	case instructions.SKP:
		mc.skip(mc.kp.IsPressed(mc.V[op.X]))

	case instructions.SKNP:
		mc.skip(!mc.kp.IsPressed(mc.V[op.X]))

	case instructions.LDVDT:
		mc.V[op.X] = mc.tmr.Delay

	case instructions.LDK:
		// the program counter is left pointing at the waiting instruction.
		// ResolveWait() advances the program counter when the key arrives
		mc.PC = res.Address
		mc.Waiting = true
		mc.WaitRegister = op.X
		mc.kp.BeginWait()
		res.Effects |= execution.AwaitingKeypress
		res.WaitRegister = op.X

	case instructions.LDDT:
		mc.tmr.Delay = mc.V[op.X]

	case instructions.LDST:
		mc.tmr.Sound = mc.V[op.X]
		res.Effects |= execution.SoundStateChanged

	case instructions.ADDI:
		// the flags register is not affected
		mc.I += uint16(mc.V[op.X])

	case instructions.LDF:
		mc.I = memory.GlyphAddress(mc.V[op.X])

	case instructions.LDB:
		v := mc.V[op.X]
		mc.mem.Write(mc.I, v/100)
		mc.mem.Write(mc.I+1, (v/10)%10)
		mc.mem.Write(mc.I+2, v%10)

	case instructions.STR:
		for i := uint16(0); i <= uint16(op.X); i++ {
			mc.mem.Write(mc.I+i, mc.V[i])
		}
		if quirk(&mc.instance.Prefs.Quirks.LoadStore) {
			mc.I += uint16(op.X) + 1
		}

	case instructions.LDR:
		for i := uint16(0); i <= uint16(op.X); i++ {
			mc.V[i] = mc.mem.Read(mc.I + i)
		}
		if quirk(&mc.instance.Prefs.Quirks.LoadStore) {
			mc.I += uint16(op.X) + 1
		}

	default:
		return fault(faults.UnrecognisedOpcode)
	}

	return nil
}

// flag converts a condition to the value stored in the flags register.
func flag(cond bool) uint8 {
	if cond {
		return 1
	}
	return 0
}
