// Package resolver assembles the terminal handler of a route.
//
// The Resolver normalises a route action (an Invokable, a Class or a
// MethodRef resolved through the service locator) and binds each declared
// parameter, first match wins:
//
//  1. the route parameter of the same name;
//  2. nil for untyped or nullable parameters;
//  3. for service types, the service registered under the type; for the
//     request type, the live request at call time;
//  4. the declared default of a builtin parameter.
//
// The result is an Invoker, which injects the live request into the
// deferred parameters and calls the action with its arguments in
// declaration order.
//
// A required parameter that nothing binds is reported at resolution time
// as ErrUnresolvedParameter. WithLenientBinding postpones the failure to
// the call, reported as ErrArgumentMismatch.
package resolver
