// Package service contains application-level use cases that sit between the
// HTTP layer and the stores in internal/store.
//
// Services receive their dependencies through constructor injection and
// translate store errors into service-level sentinels that the API layer maps
// to status codes.
//
// PlanService serves the study-plan catalog. Unlike the generation pipeline,
// which fails hard, plan listing degrades: when the store is unavailable or
// not configured, callers get the built-in default catalog instead of an
// error.
package service
