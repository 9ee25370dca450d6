package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/microblog/pkg/httpx"
)

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]int{"id": 1})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Body string `json:"body"`
	}

	decode := func(body string) (payload, error) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := httpx.DecodeJSON(httptest.NewRecorder(), req, &p)
		return p, err
	}

	p, err := decode(`{"body":"hello"}`)
	require.NoError(t, err)
	require.Equal(t, "hello", p.Body)

	for _, bad := range []string{
		``,
		`{"body":`,
		`{"body":"x","extra":1}`,
		`{"body":"x"}{"body":"y"}`,
		`{"body":"` + strings.Repeat("a", httpx.MaxBodyBytes) + `"}`,
	} {
		_, err := decode(bad)
		require.ErrorIs(t, err, httpx.ErrBadBody)
	}
}

func TestUserIDFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := httpx.UserIDFromContext(req.Context())
	require.False(t, ok)

	id, ok := httpx.UserIDFromContext(httpx.WithUserID(req.Context(), 9))
	require.True(t, ok)
	require.EqualValues(t, 9, id)
}
