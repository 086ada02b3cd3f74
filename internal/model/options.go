// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines CommandOptions, the single input of the plan assembler.
package model

// CommandOptions holds the flags of one invocation. It is immutable input
// supplied once per run and never persisted.
type CommandOptions struct {
	// CI adds the minified UMD target.
	CI bool
	// NPM adds every publishable target: minified UMD, unminified UMD and the
	// minified ES2017 flat build.
	NPM bool
	// Visualize requests a bundle visualization report for the CI target.
	Visualize bool
}
