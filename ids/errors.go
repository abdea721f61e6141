// Copyright 2025 Certen Protocol

package ids

import "errors"

// Sentinel errors for identifier parsing. Package validator re-exports
// these same values as part of its error taxonomy.
var (
	ErrIdentifierBadComposition = errors.New("identifier: bad composition")
	ErrBadHexEncoding           = errors.New("identifier: bad hex encoding")
	ErrUnknownTransactionType   = errors.New("identifier: unknown transaction type")
)
