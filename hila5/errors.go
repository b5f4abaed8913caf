package hila5

import "errors"

// ErrRng is returned when the entropy source fails during keygen or
// encapsulation.
var ErrRng = errors.New("hila5: entropy source failed")

// ErrInvalidCiphertext is returned only by Encapsulate, when reconciliation
// fails to find enough safe coefficients within the retry budget — a
// cryptographically negligible event with correctly chosen parameters.
// Decapsulation never returns this: a forged or corrupted ciphertext still
// yields a shared secret, it simply disagrees with the encapsulator's.
var ErrInvalidCiphertext = errors.New("hila5: failed to reconcile a payload within the retry budget")

// ErrInvalidLength is returned when a public key, private key, or
// ciphertext does not have its fixed wire size.
var ErrInvalidLength = errors.New("hila5: wrong input length")
