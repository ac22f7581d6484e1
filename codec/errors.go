// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInvalidSize = errors.New("invalid size")
	// ErrMalformed is returned when bytes are not a valid encoding at all.
	ErrMalformed = errors.New("malformed encoding")
	// ErrInvalidType is returned when bytes are well-formed but a field holds
	// a value of the wrong type (or one that does not fit the target).
	ErrInvalidType = errors.New("invalid field type")
)
