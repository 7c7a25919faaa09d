package emulator

import (
	"bytes"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tta/cpu"
	"github.com/ezrec/tta/io"
	"github.com/ezrec/tta/memory"
)

func makeImage(program []cpu.Code) (image []byte) {
	for _, code := range program {
		image = append(image, code.Bytes()...)
	}
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(memory.DEFAULT_SIZE, nil)

	assert.False(emu.Verbose)
	assert.Nil(emu.Watch)
	assert.Equal(memory.DEFAULT_SIZE, emu.Memory.Size())
	assert.Equal(STOP_NONE, emu.Stopped())
}

func TestEmulatorSelfTest(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(64, nil)
	assert.NoError(emu.SelfTest())

	// Registers are reset afterwards.
	for index := range cpu.REGISTER_COUNT {
		assert.Equal(int64(0), emu.Registers.Peek(index))
	}

	// A miswired machine fails.
	emu.Registers = &cpu.Registers{}
	assert.ErrorIs(emu.SelfTest(), ErrSelfTest)
}

func TestEmulatorSelect(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(64, nil)

	assert.NoError(emu.Registers.Set(20, 2, emu.Memory))
	assert.NoError(emu.Registers.Set(21, 5, emu.Memory))
	assert.NoError(emu.Registers.Set(22, 6, emu.Memory))

	value, err := emu.Registers.Get(23, emu.Memory)
	assert.NoError(err)
	assert.Equal(int64(6), value)
}

func TestEmulatorAdd(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(64, nil)

	image := makeImage([]cpu.Code{
		cpu.MakeCodeImmediate(3, 0),
		cpu.MakeCodeImmediate(4, 1),
		cpu.MakeCodeImmediate(1000, cpu.REG_PC),
	})
	assert.NoError(emu.Load(image, 0))

	res, err := emu.Run(0)
	assert.NoError(err)
	assert.Equal(Result{Ticks: 3, Pc: 1000, Reason: STOP_HALT}, res)
	assert.Equal(" ... stopped: tick=3, addr=1000", res.String())

	value, err := emu.Registers.Get(2, emu.Memory)
	assert.NoError(err)
	assert.Equal(int64(7), value)
}

func TestEmulatorLoadBase(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(64, nil)

	image := makeImage([]cpu.Code{
		cpu.MakeCodeImmediate(42, 17),
		cpu.MakeCodeImmediate(100, cpu.REG_PC),
	})
	assert.NoError(emu.Load(image, 32))
	assert.NoError(emu.Registers.Set(cpu.REG_PC, 32, emu.Memory))

	res, err := emu.Run(0)
	assert.NoError(err)
	assert.Equal(2, res.Ticks)
	assert.Equal(int64(42), emu.Registers.Peek(17))

	assert.ErrorIs(emu.Load(image, 64), memory.ErrAddress)
}

func TestEmulatorHello(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &io.Tape{
		Input:  strings.NewReader("!"),
		Output: output,
	}

	var program []cpu.Code
	program = append(program, cpu.MakeCodeImmediate(io.CHAR_CLEAR, cpu.REG_CIO))
	for _, r := range "Hello" {
		program = append(program, cpu.MakeCodeImmediate(int(r), cpu.REG_CIO))
	}
	program = append(program,
		cpu.MakeCodeMove(cpu.REG_CIO, cpu.REG_SIO),
		cpu.MakeCodeMove(cpu.REG_NL, cpu.REG_SIO),
		cpu.MakeCodeImmediate(0x7fff, cpu.REG_PC),
	)

	emu := NewEmulator(256, tape)
	assert.NoError(emu.Load(makeImage(program), 0))

	res, err := emu.Run(0)
	assert.NoError(err)
	assert.Equal(len(program), res.Ticks)
	assert.Equal(int64(0x7fff), res.Pc)
	assert.Equal(io.ESC_CLEAR+"Hello!\n", output.String())
	assert.Equal(1, tape.Clears)
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(64, &io.Tape{})

	image := makeImage([]cpu.Code{
		cpu.MakeCodeImmediate(1, 17),
		cpu.MakeCodeMove(cpu.REG_CIO, cpu.REG_CIO),
	})
	assert.NoError(emu.Load(image, 0))

	res, err := emu.Run(0)
	assert.ErrorIs(err, cpu.ErrCharInvalid)
	assert.Equal(1, res.Ticks)
	assert.Equal(STOP_NONE, res.Reason)

	var rerr *ErrRuntime
	assert.ErrorAs(err, &rerr)
	assert.Equal(1, rerr.Tick)

	var terr *cpu.ErrTick
	assert.ErrorAs(err, &terr)
	assert.Equal(int64(1), terr.Pc)
}

func TestEmulatorLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(64, nil)

	// Spin forever.
	image := makeImage([]cpu.Code{
		cpu.MakeCodeImmediate(0, cpu.REG_PC),
	})
	assert.NoError(emu.Load(image, 0))

	res, err := emu.Run(10)
	assert.NoError(err)
	assert.Equal(Result{Ticks: 10, Pc: 0, Reason: STOP_LIMIT}, res)

	// Continue from where it stopped.
	res, err = emu.Run(25)
	assert.NoError(err)
	assert.Equal(25, res.Ticks)

	emu.Reset()
	assert.Equal(0, emu.Ticks)
	assert.Equal(STOP_NONE, emu.Stopped())
}

func TestEmulatorWatch(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(64, nil)

	// Count R17 upwards forever.
	image := makeImage([]cpu.Code{
		cpu.MakeCodeMove(17, cpu.REG_ADD_A),
		cpu.MakeCodeImmediate(1, cpu.REG_ADD_B),
		cpu.MakeCodeMove(cpu.REG_ADD_R, 17),
		cpu.MakeCodeImmediate(0, cpu.REG_PC),
	})
	assert.NoError(emu.Load(image, 0))
	assert.NoError(emu.SetWatch("R17 == 5 and PC == 3"))

	res, err := emu.Run(1000)
	assert.NoError(err)
	assert.Equal(STOP_WATCH, res.Reason)
	assert.Equal(int64(5), emu.Registers.Peek(17))
	assert.Equal(int64(3), res.Pc)
	assert.Equal(4*4+3, res.Ticks)

	assert.NoError(emu.SetWatch(""))
	assert.Nil(emu.Watch)
}

func TestEmulatorWatch_Ticks(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(64, nil)
	assert.NoError(emu.SetWatch("TICKS >= MEMORY_SIZE // 2"))

	res, err := emu.Run(0)
	assert.NoError(err)
	assert.Equal(STOP_WATCH, res.Reason)
	assert.Equal(32, res.Ticks)
}

func TestEmulatorWatch_Invalid(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(64, nil)

	assert.ErrorIs(emu.SetWatch("NOT_A_REGISTER > 1"), ErrWatchExpression)
	assert.ErrorIs(emu.SetWatch("PC >"), ErrWatchExpression)
	assert.Nil(emu.Watch)

	assert.NoError(emu.SetWatch("PC + 1"))
	_, err := emu.Tick()
	assert.ErrorIs(err, ErrWatchExpression)

	var werr ErrWatch
	assert.ErrorAs(err, &werr)
	assert.Equal("PC + 1", werr.Expr)
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(64, nil)
	defines := maps.Collect(emu.Defines())

	assert.Equal("64", defines["MEMORY_SIZE"])
	assert.Equal("256", defines["CHAR_CLEAR"])
	assert.Equal("27", defines["PC"])
	assert.Equal("0", defines["ADD_A"])
	assert.Equal("35", defines["R35"])
}

func TestStopReason(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("halt", STOP_HALT.String())
	assert.Equal("watch", STOP_WATCH.String())
	assert.Equal("limit", STOP_LIMIT.String())
	assert.Equal("none", STOP_NONE.String())
}
