// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 reference clips with github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels; mono files come out duplicated,
// which audio.MonoMixer folds back.
package mp3
