// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"

	"github.com/waveedit/waveedit/buffer"
)

// Kind identifies one effect in the closed catalog. The set is fixed at
// compile time; switches over Kind in this package are exhaustive.
type Kind int

const (
	KindAmplify Kind = iota
	KindNormalize
	KindFadeIn
	KindFadeOut
	KindEcho
	KindReverb
	KindSpeedChange
	KindPitchChange
	KindLowPass
	KindHighPass
	KindNoiseGate
	KindCompressor
	KindDistortion

	numKinds
)

var kindNames = [numKinds]string{
	KindAmplify:     "amplify",
	KindNormalize:   "normalize",
	KindFadeIn:      "fadeIn",
	KindFadeOut:     "fadeOut",
	KindEcho:        "echo",
	KindReverb:      "reverb",
	KindSpeedChange: "speedChange",
	KindPitchChange: "pitchChange",
	KindLowPass:     "lowPass",
	KindHighPass:    "highPass",
	KindNoiseGate:   "noiseGate",
	KindCompressor:  "compressor",
	KindDistortion:  "distortion",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// KindFromName resolves an effect name to its Kind. The second result is
// false for names outside the catalog; callers treat that as "pass the
// audio through unchanged and warn", not as a hard failure.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Effect is one deterministic, side-effect-free transform. Apply never
// writes to src; it returns a freshly allocated buffer (or src itself for
// documented identity cases such as unit speed/pitch ratios).
type Effect interface {
	Kind() Kind
	Apply(src *buffer.Buffer) (*buffer.Buffer, error)
}

// New builds a typed effect for kind k from named parameter values.
// Missing parameters take their declared defaults; unknown names fail with
// ErrUnknownParam and out-of-range values with ErrParamRange. Values are
// rejected, never silently clamped.
func New(k Kind, params map[string]float64) (Effect, error) {
	if !k.Valid() {
		return nil, ErrUnknownKind
	}

	vals, err := resolveParams(k, params)
	if err != nil {
		return nil, err
	}

	switch k {
	case KindAmplify:
		return Amplify{Gain: vals["gain"]}, nil
	case KindNormalize:
		return Normalize{TargetPeak: vals["targetPeak"]}, nil
	case KindFadeIn:
		return FadeIn{Duration: vals["duration"]}, nil
	case KindFadeOut:
		return FadeOut{Duration: vals["duration"]}, nil
	case KindEcho:
		return Echo{Delay: vals["delay"], Decay: vals["decay"], Repeat: int(vals["repeat"])}, nil
	case KindReverb:
		return Reverb{RoomSize: vals["roomSize"], Damping: vals["damping"], Wet: vals["wet"]}, nil
	case KindSpeedChange:
		return SpeedChange{Ratio: vals["ratio"]}, nil
	case KindPitchChange:
		return PitchChange{Ratio: vals["ratio"]}, nil
	case KindLowPass:
		return LowPass{Cutoff: vals["cutoff"]}, nil
	case KindHighPass:
		return HighPass{Cutoff: vals["cutoff"]}, nil
	case KindNoiseGate:
		return NoiseGate{Floor: vals["noiseFloor"], Reduction: vals["reduction"]}, nil
	case KindCompressor:
		return Compressor{
			Threshold: vals["threshold"],
			Ratio:     vals["ratio"],
			Attack:    vals["attack"],
			Release:   vals["release"],
		}, nil
	case KindDistortion:
		return Distortion{Amount: vals["amount"], Tone: vals["tone"]}, nil
	}

	return nil, ErrUnknownKind
}

// FromName is the string entry point used at the collaborator boundary.
// ok is false when name is not in the catalog; the caller passes the input
// buffer through unchanged and reports a warning.
func FromName(name string, params map[string]float64) (eff Effect, ok bool, err error) {
	k, ok := KindFromName(name)
	if !ok {
		return nil, false, nil
	}

	eff, err = New(k, params)
	return eff, true, err
}
