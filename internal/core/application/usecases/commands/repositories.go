// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit notification side effects.
package commands

import (
	"context"

	"printz/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShopRepoFactory provides access to the shop repository within a transaction.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// StudentRepoFactory provides access to the student repository within a transaction.
	StudentRepoFactory interface {
		StudentRepository() ports.StudentRepository
	}

	// OrderUoW manages transactions spanning order persistence and the
	// related shop and student reads the lifecycle operations make.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ShopRepoFactory
		StudentRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ShopUoW manages transactions for shop-only operations
	// (catalog replacement, activity toggling).
	ShopUoW interface {
		TxManager
		ShopRepoFactory
	}

	// ShopUoWFactory creates new shop unit of work instances.
	ShopUoWFactory interface {
		Create() ShopUoW
	}
)
