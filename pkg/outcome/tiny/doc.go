// Package tiny provides a minimal fluent Chain[T, E] for synchronous
// composition of Outcome[T, E] values.
//
// It parallels the chain package but keeps API surface very small:
// - Start/FromValue: create a Chain
// - Then: compose outcome-returning functions
// - Map/MapErr: transform the success or failure payload in place
// - RepeatUntil/While: loop a step while the chain stays successful
// - Or/And: pick between alternative chains
// - Ensure: trigger side effects without changing the result
// - UnwrapOr/Finally: reduce to a concrete value
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability without changing payload types mid-chain.
package tiny
