// Package chain provides a fluent wrapper around Outcome[T, E]
// for building synchronous failure-aware chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T, E] type. Steps that change the payload type are free
// functions because Go methods cannot introduce new type parameters.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome[T, E] or value
// - Then: switch to a new Outcome[U, E] via a function
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Map: transform the successful value (T -> U)
// - MapErr: transform the failure payload (E -> F)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
