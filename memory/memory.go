// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"encoding/binary"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/tta/io"
)

const (
	DEFAULT_SIZE = 1 << 20 // Default capacity, in words.
	WORD_BYTES   = 4       // Bytes packed into a single word.
)

// Memory is the word store, along with the console used by I/O triggers.
type Memory struct {
	Verbose bool       // If set, enables verbose logging.
	Console io.Console // Console used by the I/O triggers.

	word []uint32
}

// New creates a zeroed memory of size words.
func New(size uint) (mem *Memory) {
	mem = &Memory{
		word: make([]uint32, size),
	}

	return
}

// Size returns the capacity in words.
func (mem *Memory) Size() int {
	return len(mem.word)
}

// Reset zeros all words.
func (mem *Memory) Reset() {
	clear(mem.word)
}

func (mem *Memory) check(addr int) (err error) {
	if addr < 0 || addr >= len(mem.word) {
		err = ErrAddressRange{Addr: int64(addr), Size: len(mem.word)}
	}
	return
}

// LoadWord returns the word at addr.
func (mem *Memory) LoadWord(addr int) (value uint32, err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	value = mem.word[addr]
	return
}

// StoreWord sets the word at addr.
func (mem *Memory) StoreWord(addr int, value uint32) (err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	mem.word[addr] = value
	return
}

// LoadInstruction splits the word at addr into its source (high) and
// destination (low) halves.
func (mem *Memory) LoadInstruction(addr int) (src uint16, dst uint16, err error) {
	word, err := mem.LoadWord(addr)
	if err != nil {
		return
	}

	src = uint16(word >> 16)
	dst = uint16(word & 0xffff)
	return
}

// LoadDouble returns the 64-bit value stored in the word pair
// 2*addr (high) and 2*addr+1 (low).
func (mem *Memory) LoadDouble(addr int) (value uint64, err error) {
	err = mem.checkDouble(addr)
	if err != nil {
		return
	}

	value = uint64(mem.word[addr*2])<<32 | uint64(mem.word[addr*2+1])
	return
}

// StoreDouble writes a 64-bit value to the word pair 2*addr (high) and
// 2*addr+1 (low).
func (mem *Memory) StoreDouble(addr int, value uint64) (err error) {
	err = mem.checkDouble(addr)
	if err != nil {
		return
	}

	mem.word[addr*2] = uint32(value >> 32)
	mem.word[addr*2+1] = uint32(value)
	return
}

func (mem *Memory) checkDouble(addr int) (err error) {
	if addr < 0 || addr > (len(mem.word)-2)/2 || len(mem.word) < 2 {
		err = ErrAddressRange{Addr: int64(addr), Size: len(mem.word) / 2}
	}
	return
}

// LoadProgram packs data, four bytes per word big-endian, into consecutive
// words starting at base. Loading stops at the end of data or at the end of
// memory, whichever comes first. A trailing group of fewer than four bytes
// is dropped.
func (mem *Memory) LoadProgram(data []byte, base int) (words int, err error) {
	err = mem.check(base)
	if err != nil {
		return
	}

	end := min(base+len(data)/WORD_BYTES, len(mem.word))
	for addr := base; addr < end; addr++ {
		offset := (addr - base) * WORD_BYTES
		mem.word[addr] = binary.BigEndian.Uint32(data[offset : offset+WORD_BYTES])
		if mem.Verbose {
			log.Debugf("memory: store 0x%06x: %08x", addr, mem.word[addr])
		}
		words++
	}

	if mem.Verbose {
		log.Debugf("memory: loaded %v words at 0x%x, dropped %v bytes", words, base, len(data)-words*WORD_BYTES)
	}

	return
}
