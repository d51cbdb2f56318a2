// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model defines the in-memory representation of a normalized
// variables payload: collections, their modes, the variables they own, the
// group tree derived from slash-delimited variable names and the tagged
// per-mode values.
//
// Values are classified once, when the arena is built, into a Value with an
// explicit Kind. Consumers switch on the Kind instead of inspecting raw JSON
// at every call site.
package model
