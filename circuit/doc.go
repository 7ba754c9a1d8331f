// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package circuit declares the contracts a DAG vertex has with the objects
// it references: wire identities (qubits and classical bits), classical
// registers, classical guard conditions, and the operation interface.
//
// The package deliberately stops at contracts. The instruction set, register
// files, and circuit container live with the caller; a vertex only stores
// non-owning references to them and needs two capabilities in return:
//
//   - identity types must be comparable, so they can key maps and be
//     collected into sets, and
//   - operations must expose value equality, so two vertices can be compared
//     structurally without this package knowing what an operation is.
package circuit
