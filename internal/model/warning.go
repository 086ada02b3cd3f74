// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Warning, a diagnostic emitted by the bundling engine, and
// WarningFilter, the callback that decides whether it becomes visible output.
package model

import "fmt"

// Warning is a single engine diagnostic. Only Code drives filtering; the other
// fields exist so that surfaced warnings read the way the engine printed them.
type Warning struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	ID      string      `json:"id,omitempty"`
	Loc     *WarningLoc `json:"loc,omitempty"`
}

// WarningLoc points at the source position a warning refers to.
type WarningLoc struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// String returns the warning's printable form: the message, prefixed with its
// location when one is known. A warning without a message prints its code.
func (w Warning) String() string {
	msg := w.Message
	if msg == "" {
		msg = w.Code
	}
	if w.Loc != nil && w.Loc.File != "" {
		return fmt.Sprintf("%s (%d:%d) %s", w.Loc.File, w.Loc.Line, w.Loc.Column, msg)
	}
	return msg
}

// WarningFilter is invoked by the engine for every warning. It either drops
// the warning silently or emits it as a diagnostic, and reports true when the
// warning was emitted.
type WarningFilter func(Warning) bool
