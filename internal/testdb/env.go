package testdb

import "os"

// EnvTestMongoURI names the environment variable holding the test server's
// connection string.
const EnvTestMongoURI = "WEB420_TEST_MONGO_URI"

// GetTestDatabaseURI returns the connection string for integration tests,
// or "" when none is configured.
func GetTestDatabaseURI() string {
	return os.Getenv(EnvTestMongoURI)
}

// IsIntegrationTestEnvironment returns true if a test server is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURI() != ""
}

// ShouldSkipDatabaseTest returns true if document store integration tests
// should be skipped.
func ShouldSkipDatabaseTest() bool {
	return !IsIntegrationTestEnvironment()
}

// isCIEnvironment returns true if running in any type of CI environment.
func isCIEnvironment() bool {
	ciVars := []string{
		"CI",             // Generic
		"GITHUB_ACTIONS", // GitHub Actions
		"GITLAB_CI",      // GitLab CI
		"JENKINS_URL",    // Jenkins
		"TRAVIS",         // Travis CI
		"CIRCLECI",       // Circle CI
	}

	for _, envVar := range ciVars {
		if os.Getenv(envVar) != "" {
			return true
		}
	}

	return false
}
