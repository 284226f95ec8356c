// Package mongo provides MongoDB implementations of the repository interfaces
// defined in internal/store. It owns the client connection, index setup and
// the translation of driver errors into store errors.
package mongo
