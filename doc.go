// Package wealthplan provides the types and functions to plan a personal
// investment portfolio against target allocations. It is designed to be
// local-first: all state lives in a single JSON document that the user owns,
// and every computation is a pure function of that state.
//
// The core functionalities include:
//   - Allocation Model: a Portfolio of named Assets, each planned either as a
//     percentage of the total investment or as a fixed amount, with mutators
//     that keep the plan consistent (the sum of planned amounts never exceeds
//     the total investment; over-budget edits are clamped, not rejected).
//   - Allocation Calculator: derived values (planned amount, planned and
//     actual percentages, deviation, buy/sell suggestion) recomputed on read.
//   - Rebalance Planner: the list of buy/sell actions needed to bring actual
//     holdings back to plan, and the transform that applies them.
//   - Data Persistence: encoding and decoding the portfolio snapshot to a
//     stable JSON schema, plus a directory of named plan files.
//
// This package serves as the foundational logic for the `wpl` command-line
// tool.
package wealthplan
