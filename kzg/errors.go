package kzg

import "errors"

// ErrSetup marks a programmer/contract error in the setup or commitment
// layer (oversized degree, malformed SRS, length mismatches) as opposed to
// a cryptographic rejection, which is never an error (package verifier
// reports it as a false result; package accumulator drops the solution).
var ErrSetup = errors.New("kzg: setup error")
