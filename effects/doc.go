// SPDX-License-Identifier: EPL-2.0

// Package effects is the DSP library of the editor: a closed catalog of
// deterministic transforms over buffer.Buffer.
//
// # Catalog
//
// Every effect is a typed struct implementing Effect, identified by a
// Kind constant. The set is closed at compile time; there is no runtime
// plugin surface. Construction paths:
//
//	eff := effects.Amplify{Gain: 2}                   // typed, direct
//	eff, err := effects.New(effects.KindEcho, params)  // from named values
//	eff, ok, err := effects.FromName("reverb", params) // boundary string
//
// FromName returns ok=false for a name outside the catalog. Callers treat
// that as "pass the input through unchanged and warn the user", never as a
// hard failure.
//
// # Parameters
//
// Params(kind) declares every parameter as {Name, Min, Max, Default,
// Step, Unit}. These tables are the single source of truth: dialog
// collaborators build their sliders from them, and validation checks
// against the same entries. Out-of-range values are rejected with
// ErrParamRange — never silently clamped — so a malformed parameter can
// not produce garbage samples.
//
// # Buffer discipline
//
// Apply never mutates its input. Each effect copies, transforms the copy
// and returns it, so buffers held elsewhere (undo snapshots, exports in
// flight) stay stable. The two identity cases — speed or pitch ratio of
// exactly 1 — return the input buffer itself.
//
// Amplify and Normalize clamp their result to [-1, 1]; other effects can
// exceed unit range and leave clamping to the caller's contract.
package effects
