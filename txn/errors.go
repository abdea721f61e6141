package txn

import "errors"

// ErrUnknownTransactionType is returned by DecodeEnvelope when the wire
// envelope's Kind tag is not one of the known variants, or disagrees with
// the type byte embedded in the decoded transaction's own Identifier.
var ErrUnknownTransactionType = errors.New("txn: unknown or mismatched transaction type")
