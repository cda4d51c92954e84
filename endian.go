package nbt

import (
	"encoding/binary"
	"math"
)

// ByteOrder is a host memory byte order.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// hostOrder is computed once and never modified.
var hostOrder = DetectByteOrder()

// HostByteOrder returns the byte order of the running machine.
func HostByteOrder() ByteOrder {
	return hostOrder
}

// DetectByteOrder inspects how the host lays out a uint16 in memory.
func DetectByteOrder() ByteOrder {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	if probe[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}

// memory returns the encoding/binary view of how a host of order o
// interprets raw memory.
func (o ByteOrder) memory() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Float32FromWire reinterprets four big-endian wire bytes as an IEEE-754
// single on a host of the given order. Little-endian hosts see the bytes
// reversed first; big-endian hosts reinterpret them as they are. Both
// produce the same bits.
func Float32FromWire(raw [4]byte, order ByteOrder) float32 {
	if order == LittleEndian {
		raw[0], raw[1], raw[2], raw[3] = raw[3], raw[2], raw[1], raw[0]
	}
	return math.Float32frombits(order.memory().Uint32(raw[:]))
}

// Float64FromWire is the eight byte counterpart of Float32FromWire.
func Float64FromWire(raw [8]byte, order ByteOrder) float64 {
	if order == LittleEndian {
		for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
			raw[i], raw[j] = raw[j], raw[i]
		}
	}
	return math.Float64frombits(order.memory().Uint64(raw[:]))
}
