// Package internal documents the Eventure server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, problem rendering, and routing
// - domain: business logic and domain models (users, events, tasks)
// - storage: database access and repositories (pgx + Postgres)
// - auth, config, metrics: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
