// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis reference clips with
// github.com/jfreymuth/oggvorbis. Samples are already float32, so the
// source hands them through untouched.
package vorbis
