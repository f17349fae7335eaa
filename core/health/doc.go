// Package health provides liveness and readiness handlers to register as
// route actions.
//
//	table.Get("/health/live", health.Liveness())
//	table.Get("/health/ready", health.Readiness(log, checkDatabase))
package health
