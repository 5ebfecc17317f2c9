package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/backend"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/session"
)

func newStudentFixture(t *testing.T, handler http.Handler) (*StudentStore, *session.MemoryStorage) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	storage := session.NewMemory()
	return NewStudentStore(backend.NewService(srv.URL, storage), storage), storage
}

const studentAuthBody = `{"token":"jwt-stu","student":{"id":"u1","name":"Jane","email":"jane@college.edu","year":2,"branch":"Computer Science and Engineering"}}`

func TestStudentRegisterPersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/student/register", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(studentAuthBody))
	})
	s, storage := newStudentFixture(t, mux)

	ok, err := s.Register(backend.StudentRegistration{Name: "Jane", Email: "jane@college.edu", Password: "secret", Year: 2})
	require.NoError(t, err)
	require.True(t, ok)

	user := s.User()
	require.NotNil(t, user)
	assert.Equal(t, "Jane", user.Name)
	assert.NotNil(t, user.Skills, "missing skills normalize to an empty list")

	token, has := storage.Get(session.KeyStudentToken)
	require.True(t, has)
	assert.Equal(t, "jwt-stu", token)
}

func TestStudentLoginRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/student/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	})
	s, _ := newStudentFixture(t, mux)

	ok, err := s.Login("jane@college.edu", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, s.User())
}

func TestStudentInitializeAuthCorruptSnapshot(t *testing.T) {
	storage := session.NewMemory()
	storage.Set(session.KeyStudentToken, "jwt-stu")
	storage.Set(session.KeyStudentUser, "oops")

	s := NewStudentStore(nil, storage)
	s.InitializeAuth()
	assert.False(t, s.IsAuthenticated())
	_, has := storage.Get(session.KeyStudentToken)
	assert.False(t, has)
}

func TestStudentUpdateProfileMergesAndPersists(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/student/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(studentAuthBody))
	})
	mux.HandleFunc("/student/u1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		w.Write([]byte(`{"id":"u1","name":"Jane D","email":"jane@college.edu","year":3,"branch":"Computer Science and Engineering","bio":"hi","skills":["go"]}`))
	})
	s, storage := newStudentFixture(t, mux)

	_, err := s.Login("jane@college.edu", "secret")
	require.NoError(t, err)

	ok := s.UpdateProfile(backend.StudentProfileUpdate{Name: "Jane D", Year: 3, Bio: "hi", Skills: []string{"go"}})
	require.True(t, ok)

	user := s.User()
	assert.Equal(t, "Jane D", user.Name)
	assert.Equal(t, 3, user.Year)
	assert.Equal(t, "jane@college.edu", user.Email, "identity fields survive the merge")

	snapshot, has := storage.Get(session.KeyStudentUser)
	require.True(t, has)
	var persisted map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(snapshot), &persisted))
	assert.Equal(t, "Jane D", persisted["name"])
}

func TestStudentUpdateProfileFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/student/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(studentAuthBody))
	})
	mux.HandleFunc("/student/u1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})
	s, _ := newStudentFixture(t, mux)

	_, err := s.Login("jane@college.edu", "secret")
	require.NoError(t, err)

	ok := s.UpdateProfile(backend.StudentProfileUpdate{Name: "Jane D"})
	assert.False(t, ok)
	assert.Equal(t, "Failed to update profile", s.Err())
	assert.Equal(t, "Jane", s.User().Name, "failed update leaves the profile alone")
}

func TestStudentSearchSwallowsErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/student/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	s, _ := newStudentFixture(t, mux)

	results := s.Search("2", "", "go")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
