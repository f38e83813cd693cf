// Package solo contains single-value, synchronous primitives that operate on
// Outcome[T, E]. These functions form the core building blocks for
// failure-aware pipelines.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T, E]
// - Validate/AndValidate: apply validation producing a typed failure on invalid input
// - Switch: move from Outcome[In, E] to Outcome[Out, E]
// - Map/MapErr/DoubleMap: transform success or failure payloads
// - Try: call a function (Out, error) and convert the error to a failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - FailOn: demote a success to a typed failure on a caller condition
// - Finally: reduce to a concrete value via success/failure handlers
package solo
