// SPDX-License-Identifier: EPL-2.0

// Package waveedit is the core of a multi-track audio editor: sample
// buffers, a non-destructive effect catalog, capture accumulation,
// playback transport, export encoding and an undoable document model.
//
// # Packages
//
//   - buffer: multi-channel float32 buffers, editing primitives and
//     the streaming Source pipeline (resampling, downmixing)
//   - effects: the effect catalog with parameter tables
//   - capture: chunk accumulation for recording sessions
//   - playback: the transport scheduler over an audio sink
//   - export: container encoding (wav natively, pluggable otherwise)
//   - project: tracks, selection, command history, persistence
//   - formats/...: wav, mp3, ogg and aiff decoders
//
// # Quick start
//
// Import a file, apply an effect and export the result:
//
//	b, err := waveedit.Import(file, "mp3", 44100)
//	if err != nil {
//	    return err
//	}
//
//	eff, err := effects.New(effects.KindNormalize, nil)
//	if err != nil {
//	    return err
//	}
//	out, err := eff.Apply(b)
//	if err != nil {
//	    return err
//	}
//
//	res, err := export.Export(out, export.FormatWAV)
//
// Every transform returns a fresh buffer; the input is never written,
// so undo snapshots held by the project package stay valid.
package waveedit
