// Package services contains stateless domain services that operate across
// aggregates. The insights aggregator lives here: it derives time-bucketed
// statistics from a shop's order set without touching infrastructure.
package services
