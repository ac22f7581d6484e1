// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestToID(t *testing.T) {
	require := require.New(t)
	payload := []byte("payload")

	require.Equal(ids.ID(sha256.Sum256(payload)), ToID(payload))
	require.Equal(ToID(payload), ToID([]byte("payload")))
	require.NotEqual(ToID(payload), ToID([]byte("other")))
}

func TestErrBytes(t *testing.T) {
	require.Equal(t, []byte("boom"), ErrBytes(errors.New("boom")))
}

func TestOutf(t *testing.T) {
	require := require.New(t)
	var b bytes.Buffer

	Outf(&b, "{{red}}rejected:{{/}} %s\n", "foo")
	require.Contains(b.String(), "rejected:")
	require.Contains(b.String(), "foo")
	require.NotContains(b.String(), "{{red}}")
}
