package mocks

import (
	"sync"

	"github.com/web420/restapi/internal/service/auth"
)

// MockDigestPrefix is prepended to passwords by MockPasswordHasher's default Hash.
const MockDigestPrefix = "mock-digest:"

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	// ShouldSucceed determines whether the password comparison should succeed
	ShouldSucceed bool

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	mu sync.Mutex

	// CompareCalledWith stores the arguments passed to the last Compare call
	CompareCalledWith struct {
		HashedPassword string
		Password       string
	}

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier interface
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.mu.Lock()
	m.CompareCalledWith.HashedPassword = hashedPassword
	m.CompareCalledWith.Password = password
	m.CompareCallCount++
	m.mu.Unlock()

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if m.ShouldSucceed {
		return nil
	}
	return auth.ErrPasswordMismatch
}

// CompareMockDigest is a CompareFn that accepts exactly the digests produced
// by MockPasswordHasher's default Hash.
func CompareMockDigest(hashedPassword, password string) error {
	if hashedPassword != MockDigestPrefix+password {
		return auth.ErrPasswordMismatch
	}
	return nil
}

// MockPasswordHasher implements auth.PasswordHasher for testing.
// By default it returns MockDigestPrefix followed by the password.
type MockPasswordHasher struct {
	callCounter

	HashFn func(password string) (string, error)
}

// Ensure MockPasswordHasher implements auth.PasswordHasher interface
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.record()
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return MockDigestPrefix + password, nil
}
