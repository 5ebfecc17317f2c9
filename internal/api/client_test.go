package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/session"
)

func TestRequestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	storage := session.NewMemory()
	storage.Set(session.KeyAdminToken, "tok-123")
	c := NewClient(srv.URL, storage, session.KeyAdminToken)

	_, err := c.Get("/ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestRequestOmitsAuthWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, session.NewMemory(), session.KeyAdminToken)
	_, err := c.Get("/ping", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRequestSkipsEmptyParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, session.NewMemory(), session.KeyAdminToken)
	_, err := c.Get("/list", map[string]string{"status": "verified", "hackathon_id": ""})
	require.NoError(t, err)
	assert.Equal(t, "status=verified", gotQuery)
}

func TestRequestNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, session.NewMemory(), session.KeyAdminToken)
	raw, err := c.Delete("/gone")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestRequestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"not allowed"}`, "not allowed"},
		{"error field", `{"error":"bad input"}`, "bad input"},
		{"no body", ``, "422 Unprocessable Entity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, session.NewMemory(), session.KeyAdminToken)
			_, err := c.Get("/fail", nil)
			require.Error(t, err)

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, http.StatusUnprocessableEntity, reqErr.Status)
			assert.Equal(t, tt.want, reqErr.Message)
		})
	}
}

func TestRequestRejectsInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, session.NewMemory(), session.KeyAdminToken)
	_, err := c.Get("/oops", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bare array", `[{"id":"a"},{"id":"b"}]`},
		{"data envelope", `{"data":[{"id":"a"},{"id":"b"}]}`},
		{"leading whitespace", "\n\t [{\"id\":\"a\"},{\"id\":\"b\"}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []struct {
				ID string `json:"id"`
			}
			require.NoError(t, DecodeList(json.RawMessage(tt.raw), &items))
			require.Len(t, items, 2)
			assert.Equal(t, "a", items[0].ID)
			assert.Equal(t, "b", items[1].ID)
		})
	}
}
