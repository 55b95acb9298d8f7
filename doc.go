// Package tonica is your in-memory toolkit for symbolic music theory —
// pitches, intervals, chords, scales, keys and roman-numeral harmony,
// computed exactly, with no audio dependencies.
//
// 🚀 What is tonica?
//
//	A small, deterministic library that brings together:
//		• Pitch arithmetic: MIDI-style pitches, pitch classes, signed intervals
//		• A bidirectional notation codec: scientific ("E4") & Helmholtz ("e'")
//		• A chord-class registry: named interval patterns, exact-set matching
//		• Scales & modes: rotation-derived modes, parent back-references
//		• Keys: concrete notes, diatonic triads/sevenths per degree
//		• Roman numerals: "ii°7a"-style tokens resolved against a Key
//
// ✨ Why choose tonica?
//
//   - Exact – integer semitone arithmetic, no floating point, no ambiguity
//   - Immutable – every value object is read-only after construction
//   - Injectable – registries are explicit values, not hidden globals
//   - Pure Go – no cgo, no audio backends
//
// Everything is organized under focused packages:
//
//	pitch/   — Interval, PitchClass, Pitch & the notation codec
//	chord/   — ChordClass registry & matcher, Chord with inversions
//	scale/   — Scale, modes, Key, diatonic chords, roman numerals
//	fret/    — fingering search for fretted string instruments
//	diagram/ — terminal chord & fretboard diagrams
//	songsmf/ — Standard MIDI File export for chords & progressions
//
// Quick taste:
//
//	k, _ := scale.ParseKey("E Diatonic Major")
//	cs, _ := k.Progression("I - vi - IV - V")
//	// → E Major, C♯ Minor, A Major, B Major
//
// Dive into each package's doc.go for grammars, invariants and examples.
//
//	go get github.com/katalvlaran/tonica
package tonica
