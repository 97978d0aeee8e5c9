// seehuhn.de/go/lineart - vector line-art generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cache

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"

	"golang.org/x/crypto/blake2b"
	"honnef.co/go/safeish"

	"seehuhn.de/go/lineart"
)

// Key is the fingerprint of an effect invocation.
type Key [blake2b.Size256]byte

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// value kinds, mixed into the hash so that differently typed parameters
// with the same bytes do not collide
const (
	kindGeometry byte = iota + 1
	kindFloat
	kindString
	kindBool
)

// Hasher builds a [Key] from an operation name, a geometry and a sequence
// of named parameters.  Callers must add parameters in a canonical order,
// usually sorted by name.
type Hasher struct {
	h   hash.Hash
	buf [8]byte
}

// NewHasher starts a fingerprint for the named operation.
func NewHasher(op string) *Hasher {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only possible for oversized keys
		panic(err)
	}
	hs := &Hasher{h: h}
	hs.writeString(op)
	return hs
}

// Geometry adds the raw vertex and offset arrays of g.
func (hs *Hasher) Geometry(g *lineart.Geometry) {
	coords, offsets := g.Arrays(false)
	hs.h.Write([]byte{kindGeometry})
	hs.writeUint(uint64(len(coords)))
	hs.h.Write(safeish.SliceCast[[]byte](coords))
	hs.writeUint(uint64(len(offsets)))
	hs.h.Write(safeish.SliceCast[[]byte](offsets))
}

// Float adds a named numeric parameter.  Vectors are passed as several
// values.
func (hs *Hasher) Float(name string, vs ...float64) {
	hs.writeString(name)
	hs.h.Write([]byte{kindFloat})
	hs.writeUint(uint64(len(vs)))
	for _, v := range vs {
		if v == 0 {
			v = 0 // fold -0 into +0
		}
		hs.writeUint(math.Float64bits(v))
	}
}

// String adds a named string parameter.
func (hs *Hasher) String(name, s string) {
	hs.writeString(name)
	hs.h.Write([]byte{kindString})
	hs.writeString(s)
}

// Bool adds a named boolean parameter.
func (hs *Hasher) Bool(name string, b bool) {
	hs.writeString(name)
	var v byte
	if b {
		v = 1
	}
	hs.h.Write([]byte{kindBool, v})
}

// Sum returns the fingerprint of everything added so far.
func (hs *Hasher) Sum() Key {
	var k Key
	copy(k[:], hs.h.Sum(nil))
	return k
}

func (hs *Hasher) writeUint(x uint64) {
	binary.LittleEndian.PutUint64(hs.buf[:], x)
	hs.h.Write(hs.buf[:])
}

func (hs *Hasher) writeString(s string) {
	hs.writeUint(uint64(len(s)))
	hs.h.Write([]byte(s))
}
