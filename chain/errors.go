// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransaction marks a rejection caused by the transaction
	// itself. Resubmitting the same transaction will fail the same way.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrInternal marks a processor or environment fault. The transaction
	// was not judged and may be retried.
	ErrInternal = errors.New("internal error")

	ErrShortCommit = errors.New("state committed fewer addresses than written")
)

// InvalidTransactionError wraps the reason a transaction was rejected.
type InvalidTransactionError struct {
	Err error
}

func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidTransaction, e.Err)
}

func (e *InvalidTransactionError) Unwrap() error {
	return e.Err
}

func (*InvalidTransactionError) Is(target error) bool {
	return target == ErrInvalidTransaction
}

// InternalError wraps a fault that prevented a transaction from being judged.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInternal, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func (*InternalError) Is(target error) bool {
	return target == ErrInternal
}

// InvalidTransaction classifies [err] as a rejection. Errors that are already
// classified are returned unchanged.
func InvalidTransaction(err error) error {
	if err == nil || IsClassified(err) {
		return err
	}
	return &InvalidTransactionError{Err: err}
}

// Internal classifies [err] as a processor fault. Errors that are already
// classified are returned unchanged.
func Internal(err error) error {
	if err == nil || IsClassified(err) {
		return err
	}
	return &InternalError{Err: err}
}

// IsClassified reports whether [err] already carries one of the two kinds.
func IsClassified(err error) bool {
	return errors.Is(err, ErrInvalidTransaction) || errors.Is(err, ErrInternal)
}
