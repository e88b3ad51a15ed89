package netx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_SendsBodyAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))

		b, _ := io.ReadAll(r.Body)
		var in map[string]string
		assert.NoError(t, json.Unmarshal(b, &in))
		assert.Equal(t, "a@b.com", in["emailId"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	resp, err := DoJSON(context.Background(), srv.Client(), http.MethodPost, srv.URL,
		map[string]string{"emailId": "a@b.com"}, http.Header{"Authorization": {"Bearer t"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)

	var out struct{ Message string }
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, "ok", out.Message)
}

func TestDoJSON_NoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	resp, err := DoJSON(context.Background(), srv.Client(), http.MethodGet, srv.URL, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Error(t, resp.Decode(&struct{}{}))
}

func TestDoJSON_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := DoJSON(context.Background(), http.DefaultClient, http.MethodGet, url, nil, nil)
	assert.Error(t, err)
}

func TestDoJSON_UnencodableBody(t *testing.T) {
	_, err := DoJSON(context.Background(), http.DefaultClient, http.MethodPost, "http://127.0.0.1:1", make(chan int), nil)
	assert.ErrorContains(t, err, "encode request")
}
