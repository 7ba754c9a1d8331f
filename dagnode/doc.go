// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package dagnode provides the vertex type for a quantum-circuit dependency
// DAG. A node is either an operation, an input terminal, or an output
// terminal, and carries the corresponding payload: the operation reference,
// its quantum and classical operands and optional classical guard, or the
// single wire a terminal represents.
//
// # Two notions of equality
//
// A node has two deliberately distinct equality notions, and they must never
// be conflated:
//
//   - Identity equality, used for container membership. Every node carries
//     an identity assigned once by its owning graph; Handle exposes it as an
//     opaque key and Set builds on it. Two nodes with identical payloads but
//     different identities are different entries — a Set is a set of graph
//     positions, not a set of payloads.
//
//   - Semantic equivalence, used as the node-match callback by graph
//     isomorphism tests. SemanticEq compares payloads structurally, with a
//     single special case: barrier operands commute, so two barriers match
//     whenever their operand sets are equal regardless of order.
//
// # Ownership and mutation
//
// Nodes hold non-owning references to operations, bits, and registers; the
// circuit owns those. The owning graph creates a node when a vertex is
// inserted and may rewrite its name and quantum operands in place during
// rewriting passes. Nothing here locks: the container serializes access.
package dagnode
