// Package kernel provides core domain primitives for the print-shop backend.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Money: A decimal money amount that can never go negative
//   - Username: The external identifier for students and shops
//   - PaymentID: The opaque payment-provider reference that correlates an order
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
