package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Freeeeeet/lectures_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sharedDocument = `{"Среда": {"Числитель": [{"Время занятий": "09:00-10:30", "Наименование дисциплины": "Алгебра", "Вид занятий": "Лекция", "Аудитория": "101", "Преподаватель": "Иванов", "Частота": "2"}]}}`

func newShareServer(t *testing.T, location string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/share", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusMovedPermanently)
	})
	mux.HandleFunc("/redir", func(w http.ResponseWriter, r *http.Request) {
		t.Error("redirect must not be followed")
	})
	mux.HandleFunc("/drives/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/drives/ABC123/items/ABC123!105/content" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("authkey") != "KEY" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte(sharedDocument))
	})

	return httptest.NewServer(mux)
}

func TestShareResolverFetch(t *testing.T) {
	srv := newShareServer(t, "/redir?resid=ABC123!105&authkey=KEY")
	defer srv.Close()

	doc, err := NewShareResolver(srv.URL, zap.NewNop()).Fetch(context.Background(), srv.URL+"/share")
	require.NoError(t, err)

	entries := doc[model.Wednesday][model.BucketOdd]
	require.Len(t, entries, 1)
	assert.Equal(t, "Алгебра", entries[0].SubjectName)
	assert.Equal(t, "2", entries[0].FrequencyNote)
}

func TestShareResolverErrors(t *testing.T) {
	tests := []struct {
		name     string
		location string
	}{
		{"no redirect", ""},
		{"no authkey", "/redir?resid=ABC123!105"},
		{"no resid", "/redir?authkey=KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newShareServer(t, tt.location)
			defer srv.Close()

			_, err := NewShareResolver(srv.URL, zap.NewNop()).Fetch(context.Background(), srv.URL+"/share")
			assert.ErrorIs(t, err, ErrShareRedirect)
		})
	}
}

func TestShareResolverBadKey(t *testing.T) {
	srv := newShareServer(t, "/redir?resid=ABC123!105&authkey=WRONG")
	defer srv.Close()

	_, err := NewShareResolver(srv.URL, zap.NewNop()).Fetch(context.Background(), srv.URL+"/share")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
