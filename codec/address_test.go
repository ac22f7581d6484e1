// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamespaceGolden(t *testing.T) {
	require := require.New(t)

	require.Equal("1cf126", NewNamespace("intkey").String())
	require.Equal("bb021e", NewNamespace("wallet-family").String())
}

func TestCreateAddressGolden(t *testing.T) {
	tests := map[string]struct {
		family   string
		name     string
		expected string
	}{
		"intkey foo": {
			family:   "intkey",
			name:     "foo",
			expected: "1cf1266e282c41be5e4254d8820772c5518a2c5a8c0c7f7eda19594a7eb539453e1ed7",
		},
		"wallet john": {
			family:   "wallet-family",
			name:     "john",
			expected: "bb021eaa71d47343dd36e719f35f30fa79aec540e91b81c214fddfe0bedd53370df46d",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			ns := NewNamespace(tt.family)
			addr := CreateAddress(ns, tt.name)
			require.Equal(tt.expected, addr.String())
			require.Equal(ns, addr.Namespace())
			require.True(ns.Contains(addr))

			// Derivation is pure.
			require.Equal(addr, CreateAddress(NewNamespace(tt.family), tt.name))
		})
	}
}

func TestNamespaceContains(t *testing.T) {
	require := require.New(t)
	intkey := NewNamespace("intkey")
	wallet := NewNamespace("wallet-family")

	require.False(intkey.Contains(CreateAddress(wallet, "foo")))
	require.NotEqual(CreateAddress(intkey, "foo"), CreateAddress(wallet, "foo"))
}

func TestAddressText(t *testing.T) {
	require := require.New(t)
	addr := CreateAddress(NewNamespace("intkey"), "bar")

	addrStr, err := addr.MarshalText()
	require.NoError(err)
	require.Len(addrStr, 70)

	var parsedAddr Address
	require.NoError(parsedAddr.UnmarshalText(addrStr))
	require.Equal(addr, parsedAddr)

	parsedAddr, err = ParseAddress("0x" + addr.String())
	require.NoError(err)
	require.Equal(addr, parsedAddr)
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)
	addr := CreateAddress(NewNamespace("intkey"), "baz")

	b, err := json.Marshal(addr)
	require.NoError(err)
	require.Equal(`"`+addr.String()+`"`, string(b))

	var parsed Address
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(addr, parsed)
}

func TestParseAddressInvalid(t *testing.T) {
	require := require.New(t)

	_, err := ParseAddress("1cf126")
	require.ErrorIs(err, ErrInvalidSize)

	_, err = ParseAddress("zz")
	require.Error(err)
}
