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

// Package level holds option values that are more than a simple switch.
package level

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ArrayLimit specifies which array literal initializers are exempt from reporting.
//
// It is either a switch or a threshold: arrays with more elements than the threshold are exempt.
type ArrayLimit int

const (
	// ArrayAll exempts all array literal initializers.
	ArrayAll ArrayLimit = -1

	// ArrayNone reports array literal initializers of any size.
	ArrayNone ArrayLimit = math.MaxInt
)

// ErrArrayLimit is returned for values that are neither a boolean nor a non-negative number.
var ErrArrayLimit = errors.New("invalid array limit")

// Limit returns the maximum element count of a reported array literal, negative for none.
func (o ArrayLimit) Limit() int { return int(o) }

// String returns the textual representation of the limit.
func (o ArrayLimit) String() string {
	switch {
	case o < 0:
		return "true"

	case o == ArrayNone:
		return "false"

	default:
		return strconv.Itoa(int(o))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (o ArrayLimit) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *ArrayLimit) UnmarshalText(text []byte) error {
	switch s := strings.ToLower(string(text)); s {
	case "true", "on", "all":
		*o = ArrayAll

	case "", "false", "off", "none":
		*o = ArrayNone

	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return fmt.Errorf("%w %q", ErrArrayLimit, string(text))
		}

		*o = ArrayLimit(n)
	}

	return nil
}

// MarshalJSON implements [json.Marshaler].
func (o ArrayLimit) MarshalJSON() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler], accepting booleans, numbers and their string forms.
func (o *ArrayLimit) UnmarshalJSON(data []byte) error {
	if unquoted, err := strconv.Unquote(string(data)); err == nil {
		return o.UnmarshalText([]byte(unquoted))
	}

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	return o.UnmarshalText(data)
}
