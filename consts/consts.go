// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	MaxUint32 = ^uint32(0)

	// NamespaceLen is the number of bytes a family reserves at the front of
	// every address it owns.
	NamespaceLen = 3
	// AddressSuffixLen is the number of digest bytes identifying a name
	// within a namespace.
	AddressSuffixLen = 32
	AddressLen       = NamespaceLen + AddressSuffixLen
)
