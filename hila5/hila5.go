// Package hila5 implements the HILA5 post-quantum key encapsulation
// mechanism: a Ring-LWE KEM over R_q = Z_q[x]/(x^1024+1), q=12289, that
// lets a responder (key owner) and an initiator agree on a 256-bit shared
// secret using reconciliation instead of encryption.
//
// The three exported entry points mirror the three KEM operations:
// GenerateKeyPair, Encapsulate and Decapsulate. Each composes the ring
// arithmetic, noise sampling, reconciliation and XE5 correction packages
// into the state machine described by the scheme; apart from sharing the
// ring types, none of those packages know about each other or about the
// key and ciphertext wire format, which lives here.
package hila5

import "github.com/hila5/hila5-go/sampling"

// domainSeparator prevents the derived shared secret from being reused by
// another protocol that happens to hash the same public values.
const domainSeparator = "HILA5v10"

const (
	// SeedLen is the width, in bytes, of the keygen and XOF seeds.
	SeedLen = sampling.SeedLen

	// SharedSecretLen is the width, in bytes, of the agreed secret.
	SharedSecretLen = 32
)

// SharedSecret is the 256-bit value both parties agree on.
type SharedSecret [SharedSecretLen]byte
