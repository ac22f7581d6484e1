// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"crypto/sha512"
	"encoding/hex"

	"github.com/ava-labs/txprocessor/consts"
)

// Namespace is the address prefix reserved for a transaction family.
type Namespace [consts.NamespaceLen]byte

// Address is the 35 byte key of an entry in global state: a [Namespace]
// followed by the tail of the name's digest.
type Address [consts.AddressLen]byte

var EmptyAddress = Address{}

// NewNamespace returns the first [consts.NamespaceLen] bytes of the SHA-512
// digest of [family].
func NewNamespace(family string) Namespace {
	digest := sha512.Sum512([]byte(family))
	var ns Namespace
	copy(ns[:], digest[:consts.NamespaceLen])
	return ns
}

// String implements fmt.Stringer.
func (n Namespace) String() string {
	return hex.EncodeToString(n[:])
}

func (n Namespace) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// Contains reports whether [a] lives under [n].
func (n Namespace) Contains(a Address) bool {
	return Namespace(a[:consts.NamespaceLen]) == n
}

// CreateAddress returns the [Address] of [name] in [ns]. The suffix is the
// last [consts.AddressSuffixLen] bytes of the SHA-512 digest of [name].
//
// CreateAddress does not bound the length of [name]; families enforce their
// own limits before deriving.
func CreateAddress(ns Namespace, name string) Address {
	digest := sha512.Sum512([]byte(name))
	var a Address
	copy(a[:], ns[:])
	copy(a[consts.NamespaceLen:], digest[sha512.Size-consts.AddressSuffixLen:])
	return a
}

// Namespace returns the prefix of [a].
func (a Address) Namespace() Namespace {
	return Namespace(a[:consts.NamespaceLen])
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// ParseAddress decodes the 70 character hex form of an address. A leading
// "0x" is accepted.
func ParseAddress(s string) (Address, error) {
	if len(s) >= 2 && s[:2] == "0x" {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return EmptyAddress, err
	}
	if len(b) != consts.AddressLen {
		return EmptyAddress, ErrInvalidSize
	}
	return Address(b), nil
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	result := make([]byte, len(a)*2)
	hex.Encode(result, a[:])
	return result, nil
}

// UnmarshalText parses a hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
