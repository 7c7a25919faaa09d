// Package memory implements the word addressable store of the MOVE machine.
//
// Memory is a flat array of 32-bit words. Double words (64-bit values) occupy
// two consecutive words, high word first, and are addressed by pair index.
// Instruction words are split into a 16-bit source field (high half) and a
// 16-bit destination register field (low half).
package memory
