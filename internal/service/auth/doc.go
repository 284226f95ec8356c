// Package auth provides the password digest capability used by the session
// endpoints. Plaintext passwords are hashed with bcrypt before storage and
// only ever compared through the same scheme.
package auth
