// Package memory provides in-memory implementations of the storage ports.
// They are used by tests and by the "memory" cache backend.
package memory
