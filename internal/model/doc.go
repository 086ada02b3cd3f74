// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of a bundle plan: the command
// options that select targets, the partial configurations callers hand to the
// descriptor builder, and the fully resolved descriptors handed to the external
// bundling engine.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - CommandOptions: The flags of a single invocation (ci, npm, visualize). They
//     decide which targets end up in the plan.
//
//   - Partial: What a caller knows about one target. Every field is optional and is
//     merged over fixed defaults by the builder.
//
//   - Descriptor: The resolved instruction set for producing exactly one artifact.
//     It is created once, consumed once by the engine and then discarded.
//
//   - Plugin: An opaque plugin invocation. The engine owns plugin semantics; the
//     model only carries the name and the options passed to it.
//
// Why a separate model package?
//
// The builder, the planner, the plugin modules and the output encoders all speak
// in these types. Keeping them in a leaf package with no internal imports lets
// plugin modules construct plugins without depending on the builder, and lets the
// builder depend on plugin modules only through the registry.
//
// Merging rules
//
// All merges in this package are shallow and pure: they return a new value and
// never mutate either operand. Option values are immutable cty values, so a merge
// copies only the top-level map and repeated builds never leak state from one
// target into another.
package model
