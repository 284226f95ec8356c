package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/mocks"
	"github.com/web420/restapi/internal/platform/logger"
	"github.com/web420/restapi/internal/service/auth"
	"github.com/web420/restapi/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func TestSessionHandler_SignupAndLogin(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	creds := SignupRequest{UserName: "ada", Password: "analytical-engine", EmailAddress: "ada@example.com"}

	rr := s.do(t, http.MethodPost, "/api/signup", creds)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	raw := decodeRaw(t, rr)
	assert.Equal(t, "ada", raw["userName"])
	assert.Equal(t, "ada@example.com", raw["emailAddress"])
	assert.NotEmpty(t, raw["_id"])
	assert.NotContains(t, raw, "password")
	assert.NotContains(t, rr.Body.String(), creds.Password)

	stored, err := s.users.GetByUserName(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, mocks.MockDigestPrefix+creds.Password, stored.HashedPassword)

	rr = s.do(t, http.MethodPost, "/api/login", LoginRequest{UserName: "ada", Password: creds.Password})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"message":"User logged in"}`, rr.Body.String())

	rr = s.do(t, http.MethodPost, "/api/login", LoginRequest{UserName: "ada", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid username and/or password", decodeError(t, rr).Message)

	assert.NotContains(t, s.logs.String(), creds.Password)
}

func TestSessionHandler_Signup(t *testing.T) {
	t.Parallel()

	existing := domain.User{UserName: "taken", HashedPassword: mocks.MockDigestPrefix + "secret"}

	t.Run("existing user name answers 401 and hashes nothing", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, withUsers(existing))

		rr := s.do(t, http.MethodPost, "/api/signup", SignupRequest{UserName: "taken", Password: "another"})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Username is already in use", decodeError(t, rr).Message)
		assert.Zero(t, s.hasher.Calls())
	})

	t.Run("losing a signup race answers 401", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		s.users.CreateFn = func(ctx context.Context, user *domain.User) error {
			return store.ErrUserNameExists
		}

		rr := s.do(t, http.MethodPost, "/api/signup", SignupRequest{UserName: "racer", Password: "pw"})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Username is already in use", decodeError(t, rr).Message)
	})

	t.Run("lookup failure answers 500", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		s.users.GetByUserNameFn = func(ctx context.Context, userName string) (*domain.User, error) {
			return nil, errors.New("no reachable servers")
		}

		rr := s.do(t, http.MethodPost, "/api/signup", SignupRequest{UserName: "ada", Password: "pw"})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Server Exception: no reachable servers", decodeError(t, rr).Message)
	})

	t.Run("oversized password answers 400", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		s.hasher.HashFn = func(password string) (string, error) {
			return "", auth.ErrPasswordTooLong
		}

		rr := s.do(t, http.MethodPost, "/api/signup", SignupRequest{UserName: "ada", Password: "pw"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid password: too long", decodeError(t, rr).Message)
	})

	tests := []struct {
		name      string
		body      interface{}
		wantError string
	}{
		{"missing user name", map[string]string{"password": "pw"}, "Invalid userName: required field"},
		{"missing password", map[string]string{"userName": "ada"}, "Invalid password: required field"},
		{
			"malformed email",
			map[string]string{"userName": "ada", "password": "pw", "emailAddress": "nope"},
			"Invalid emailAddress: invalid email format",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)

			rr := s.do(t, http.MethodPost, "/api/signup", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rr).Message)
			assert.Zero(t, s.users.Calls())
		})
	}
}

func TestSessionHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("unknown user gets the same answer as a wrong password", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		rr := s.do(t, http.MethodPost, "/api/login", LoginRequest{UserName: "ghost", Password: "pw"})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Invalid username and/or password", decodeError(t, rr).Message)
		assert.Zero(t, s.verifier.CompareCallCount)
	})

	t.Run("failed logins are logged at warn", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		s.do(t, http.MethodPost, "/api/login", LoginRequest{UserName: "ghost", Password: "pw"})

		entries, err := s.logs.GetLogEntries()
		require.NoError(t, err)
		var found bool
		for _, e := range entries {
			if e["msg"] == "API error response" {
				found = true
				assert.Equal(t, "WARN", e["level"])
			}
		}
		assert.True(t, found)
	})

	t.Run("store failure answers 500", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		s.users.GetByUserNameFn = func(ctx context.Context, userName string) (*domain.User, error) {
			return nil, store.ErrUnavailable
		}

		rr := s.do(t, http.MethodPost, "/api/login", LoginRequest{UserName: "ada", Password: "pw"})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSessionHandler_Bcrypt(t *testing.T) {
	t.Parallel()

	log, _ := logger.NewTestLogger()
	users := mocks.NewMockUserStore()
	verifier := auth.NewBcryptVerifier(bcrypt.MinCost)
	handler := NewSessionHandler(users, verifier, verifier, log)

	post := func(h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data)))
		return rr
	}

	rr := post(handler.Signup, SignupRequest{UserName: "linus", Password: "penguin"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	stored, err := users.GetByUserName(context.Background(), "linus")
	require.NoError(t, err)
	assert.NotEqual(t, "penguin", stored.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("penguin")))

	rr = post(handler.Login, LoginRequest{UserName: "linus", Password: "penguin"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = post(handler.Login, LoginRequest{UserName: "linus", Password: "pelican"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = post(handler.Signup, SignupRequest{UserName: "linus", Password: "other"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestNewSessionHandlerPanicsWithoutLogger(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewSessionHandler(mocks.NewMockUserStore(), &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, nil)
	})
}
