// Package shop contains the Shop aggregate and its pricing Catalog.
//
// The catalog is the shop's rate table: twelve unit prices (six paper sizes
// times two color modes) plus a binding surcharge. It is published and
// replaced as a whole, never partially, so readers either see no catalog at
// all or a complete one.
package shop
