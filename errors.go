// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/zinflate

package zinflate

import "errors"

// Package errors. Every failure wraps one of these sentinels with
// fmt.Errorf("%w: ...") so callers can match the kind with errors.Is
// while still getting the offset / expected-vs-actual context.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrBoundsViolation  = errors.New("bounds violation")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrCorruptData      = errors.New("corrupt data")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrNilReader        = errors.New("reader is nil")
)
