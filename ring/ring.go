// Package ring implements the cyclotomic ring R_q = Z_q[X]/(X^N+1) that
// HILA5 operates over, with N = 1024 and q = 12289.
//
// Two value types share the same 1024-coefficient layout but are never
// interchangeable: Vector holds coefficients in the standard (coefficient)
// basis, NttVector holds the image of a Vector under the negacyclic
// Number-Theoretic Transform. There is deliberately no conversion method
// between them other than NTT/INTT: mixing the two bases by accident is a
// correctness bug the type system should catch at compile time.
package ring

// N is the ring degree. Fixed by the scheme.
const N = 1024

// Q is the ring modulus. Fixed by the scheme.
const Q int32 = 12289

// Scalar is a residue mod Q, or an intermediate signed value awaiting
// normalization into [0, Q).
type Scalar = int32

// primitiveRoot is g = 1945, a primitive 2N-th root of unity mod Q. Its
// square is the primitive N-th root of unity used by the NTT.
const primitiveRoot Scalar = 1945

// NInv is N^-1 mod Q (= 2^-10 mod Q), the normalization factor the inverse
// transform must fold in.
const NInv Scalar = 12277
