// Package kzg implements a non-hiding KZG10 polynomial commitment scheme
// over BLS12-377: commit, open and check on dense univariate polynomials,
// plus the SRS/ProvingKey/VerifyingKey data model the puzzle is built on.
package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Polynomial is a dense univariate polynomial over the BLS12-377 scalar
// field, coefficients in ascending order (index 0 is the constant term).
// A nil or zero-length Polynomial represents the zero polynomial.
type Polynomial []fr.Element

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return nil
}

// Degree returns deg(p), or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// Evaluate computes p(x) by Horner's method.
func (p Polynomial) Evaluate(x fr.Element) fr.Element {
	var result fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p[i])
	}
	return result
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		out[i].Add(&a, &b)
	}
	return out
}

// Scale returns c*p.
func (p Polynomial) Scale(c fr.Element) Polynomial {
	out := make(Polynomial, len(p))
	for i := range p {
		out[i].Mul(&p[i], &c)
	}
	return out
}

// Mul returns the schoolbook convolution p*q. Used instead of an
// FFT-based multiplication: the degrees the puzzle deals with (roughly
// twice an epoch's degree) are small enough that O(n^2) convolution keeps
// the synthetic-division and evaluation logic straightforward.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	out := make(Polynomial, len(p)+len(q)-1)
	for i, a := range p {
		if a.IsZero() {
			continue
		}
		for j, b := range q {
			var term fr.Element
			term.Mul(&a, &b)
			out[i+j].Add(&out[i+j], &term)
		}
	}
	return out
}
