// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

// flag is the set of unsigned types a [BitMask] can hold.
type flag interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of single-bit flags of type T.
//
// The zero value is the empty set.
type BitMask[T flag] struct {
	bits T
}

// NewBitMask returns the set holding the given flags.
func NewBitMask[T flag](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, f := range flags {
		b.bits |= f
	}

	return b
}

// Set adds f to the set when value is true and removes it otherwise.
func (b *BitMask[T]) Set(f T, value bool) {
	if !value {
		b.Disable(f)

		return
	}

	b.Enable(f)
}

// Enable adds f to the set.
func (b *BitMask[T]) Enable(f T) { b.bits |= f }

// Disable removes f from the set.
func (b *BitMask[T]) Disable(f T) { b.bits &^= f }

// Enabled reports whether any bit of f is in the set.
func (b BitMask[T]) Enabled(f T) bool { return b.bits&f != 0 }
