// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/txprocessor/codec"
	"github.com/ava-labs/txprocessor/utils"
)

// Result is the outcome of processing a single [Request].
type Result struct {
	ID            ids.ID
	FamilyName    string
	FamilyVersion string

	Success bool
	Error   []byte

	// Committed holds the addresses the state acknowledged, in commit order.
	Committed []codec.Address
	Reads     int64
	Writes    int64
}

// NewResult returns a [Result] for [req] with the outcome [err].
func NewResult(req *Request, err error) *Result {
	r := &Result{
		ID:            req.ID,
		FamilyName:    req.FamilyName,
		FamilyVersion: req.FamilyVersion,
		Success:       err == nil,
	}
	if err != nil {
		r.Error = utils.ErrBytes(err)
	}
	return r
}
