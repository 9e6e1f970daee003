// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"
)

// Param declares one named numeric parameter of an effect. The tables
// returned by Params are the single source of truth for parameter ranges:
// external callers source slider bounds from here, and New validates
// against the same entries.
type Param struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
	Step    float64
	Unit    string
}

var paramTables = [numKinds][]Param{
	KindAmplify: {
		{Name: "gain", Min: 0, Max: 10, Default: 1, Step: 0.1, Unit: "x"},
	},
	KindNormalize: {
		{Name: "targetPeak", Min: 0, Max: 1, Default: 1, Step: 0.01, Unit: ""},
	},
	KindFadeIn: {
		{Name: "duration", Min: 0, Max: 60, Default: 1, Step: 0.1, Unit: "s"},
	},
	KindFadeOut: {
		{Name: "duration", Min: 0, Max: 60, Default: 1, Step: 0.1, Unit: "s"},
	},
	KindEcho: {
		{Name: "delay", Min: 0.01, Max: 5, Default: 0.3, Step: 0.01, Unit: "s"},
		{Name: "decay", Min: 0, Max: 1, Default: 0.5, Step: 0.01, Unit: ""},
		{Name: "repeat", Min: 1, Max: 10, Default: 3, Step: 1, Unit: ""},
	},
	KindReverb: {
		{Name: "roomSize", Min: 0, Max: 1, Default: 0.8, Step: 0.01, Unit: ""},
		{Name: "damping", Min: 0, Max: 1, Default: 0.5, Step: 0.01, Unit: ""},
		{Name: "wet", Min: 0, Max: 1, Default: 0.3, Step: 0.01, Unit: ""},
	},
	KindSpeedChange: {
		{Name: "ratio", Min: 0.25, Max: 4, Default: 1, Step: 0.05, Unit: "x"},
	},
	KindPitchChange: {
		{Name: "ratio", Min: 0.5, Max: 2, Default: 1, Step: 0.01, Unit: "x"},
	},
	KindLowPass: {
		{Name: "cutoff", Min: 20, Max: 20000, Default: 1000, Step: 10, Unit: "Hz"},
	},
	KindHighPass: {
		{Name: "cutoff", Min: 20, Max: 20000, Default: 200, Step: 10, Unit: "Hz"},
	},
	KindNoiseGate: {
		{Name: "noiseFloor", Min: 0, Max: 1, Default: 0.02, Step: 0.005, Unit: ""},
		{Name: "reduction", Min: 0, Max: 1, Default: 0.8, Step: 0.01, Unit: ""},
	},
	KindCompressor: {
		{Name: "threshold", Min: 0, Max: 1, Default: 0.5, Step: 0.01, Unit: ""},
		{Name: "ratio", Min: 1, Max: 20, Default: 4, Step: 0.1, Unit: ":1"},
		{Name: "attack", Min: 1, Max: 500, Default: 10, Step: 1, Unit: "ms"},
		{Name: "release", Min: 1, Max: 2000, Default: 100, Step: 1, Unit: "ms"},
	},
	KindDistortion: {
		{Name: "amount", Min: 1, Max: 50, Default: 10, Step: 0.5, Unit: ""},
		{Name: "tone", Min: 0, Max: 1, Default: 0.5, Step: 0.01, Unit: ""},
	},
}

// Params returns the declared parameter table for k, or nil when k is not
// a catalog entry. The returned slice must be treated as read-only.
func Params(k Kind) []Param {
	if !k.Valid() {
		return nil
	}
	return paramTables[k]
}

// resolveParams merges caller values over declared defaults, rejecting
// unknown names and out-of-range values.
func resolveParams(k Kind, params map[string]float64) (map[string]float64, error) {
	specs := paramTables[k]

	vals := make(map[string]float64, len(specs))
	for _, p := range specs {
		vals[p.Name] = p.Default
	}

	for name, v := range params {
		spec, ok := findParam(specs, name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownParam, k, name)
		}
		if err := spec.check(k, v); err != nil {
			return nil, err
		}
		vals[name] = v
	}

	return vals, nil
}

func findParam(specs []Param, name string) (Param, bool) {
	for _, p := range specs {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// checkRange validates a single typed field against its declared table
// entry. Effects call it from Apply so a hand-constructed struct gets the
// same boundary treatment as one built via New.
func checkRange(k Kind, name string, v float64) error {
	spec, ok := findParam(paramTables[k], name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownParam, k, name)
	}
	return spec.check(k, v)
}

// check validates v against the declared bounds. Whole-number steps
// declare integer parameters, so a fractional value there is rejected
// rather than truncated.
func (p Param) check(k Kind, v float64) error {
	if v < p.Min || v > p.Max {
		return fmt.Errorf("%w: %s.%s = %v, declared [%v, %v]",
			ErrParamRange, k, p.Name, v, p.Min, p.Max)
	}
	if p.Step == 1 && v != math.Trunc(v) {
		return fmt.Errorf("%w: %s.%s = %v, declared integer",
			ErrParamRange, k, p.Name, v)
	}
	return nil
}
