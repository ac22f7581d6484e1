// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	// Equal records must encode to identical state bytes.
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	// Keys must match field names exactly, so "verb" is not "Verb".
	decMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		FieldNameMatching: cbor.FieldNameMatchingCaseSensitive,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Record is the set of named values stored at a single [Address]. Several
// names may hash to the same address, so a record must be merged into rather
// than replaced.
type Record[V any] map[string]V

// Marshal encodes [v] as deterministic CBOR.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR [b] into [v]. Type mismatches are reported as
// [ErrInvalidType], anything else as [ErrMalformed].
func Unmarshal(b []byte, v any) error {
	err := decMode.Unmarshal(b, v)
	if err == nil {
		return nil
	}
	var typeErr *cbor.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %s", ErrInvalidType, err)
	}
	return fmt.Errorf("%w: %s", ErrMalformed, err)
}

// EncodeRecord returns the state bytes for [r].
func EncodeRecord[V any](r Record[V]) ([]byte, error) {
	return Marshal(r)
}

// DecodeRecord parses state bytes. Empty input means nothing has been
// written at the address yet and is reported as (nil, false, nil).
func DecodeRecord[V any](b []byte) (Record[V], bool, error) {
	if len(b) == 0 {
		return nil, false, nil
	}
	var r Record[V]
	if err := Unmarshal(b, &r); err != nil {
		return nil, false, err
	}
	if r == nil {
		r = Record[V]{}
	}
	return r, true, nil
}
