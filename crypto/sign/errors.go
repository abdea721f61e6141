package sign

import "errors"

// ErrBadSignature is returned by Verify when the signature does not match
// the public key and payload under the expected domain.
var ErrBadSignature = errors.New("sign: signature verification failed")
