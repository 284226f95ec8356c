package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/web420/restapi/internal/api/shared"
	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/mocks"
	"github.com/web420/restapi/internal/platform/logger"
)

// testServer wires every handler to in-memory stores behind a chi router.
type testServer struct {
	composers *mocks.MockComposerStore
	people    *mocks.MockPersonStore
	customers *mocks.MockCustomerStore
	teams     *mocks.MockTeamStore
	users     *mocks.MockUserStore
	hasher    *mocks.MockPasswordHasher
	verifier  *mocks.MockPasswordVerifier
	logs      *logger.TestLogBuffer
	router    chi.Router
}

type serverOption func(*testServer)

func withComposers(seed ...domain.Composer) serverOption {
	return func(s *testServer) { s.composers = mocks.NewMockComposerStore(seed...) }
}

func withTeams(seed ...domain.Team) serverOption {
	return func(s *testServer) { s.teams = mocks.NewMockTeamStore(seed...) }
}

func withUsers(seed ...domain.User) serverOption {
	return func(s *testServer) { s.users = mocks.NewMockUserStore(seed...) }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	log, logs := logger.NewTestLogger()
	s := &testServer{
		composers: mocks.NewMockComposerStore(),
		people:    mocks.NewMockPersonStore(),
		customers: mocks.NewMockCustomerStore(),
		teams:     mocks.NewMockTeamStore(),
		users:     mocks.NewMockUserStore(),
		hasher:    &mocks.MockPasswordHasher{},
		verifier:  &mocks.MockPasswordVerifier{CompareFn: mocks.CompareMockDigest},
		logs:      logs,
	}
	for _, opt := range opts {
		opt(s)
	}

	handlers := &Handlers{
		Composers: NewComposerHandler(s.composers, log),
		People:    NewPersonHandler(s.people, log),
		Customers: NewCustomerHandler(s.customers, log),
		Teams:     NewTeamHandler(s.teams, log),
		Sessions:  NewSessionHandler(s.users, s.hasher, s.verifier, log),
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := shared.SetTraceID(req.Context())
			ctx = logger.WithLogger(ctx, log)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Route("/api", func(r chi.Router) {
		Mount(r, handlers.Routes())
	})
	s.router = r
	return s
}

// do sends a request with body encoded as JSON unless it is already a string.
func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

// decodeRaw returns the body as a generic object so tests can check which
// keys are present.
func decodeRaw(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	return decodeBody[map[string]interface{}](t, rr)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	return decodeBody[shared.ErrorResponse](t, rr)
}
