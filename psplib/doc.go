// Package psplib reads PSPLIB's standard ".sm" benchmark text format and
// converts it into project.BuildInput. It exists so instances from the
// wider RCPSP benchmark corpus can be fed into this module without a
// bespoke loader; nothing in the core packages depends on it.
package psplib
