package myhttpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashim-08/Nepali-Thali/lib/mylog"
)

func TestJSONHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"recipes":[]}`))
	}))
	defer server.Close()

	sut := NewJSONHTTPClient(mylog.New("httpclient"))

	status, body, err := sut.Send(context.TODO(), http.MethodGet, server.URL+"/recipes", nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `{"recipes":[]}`, string(body))
}
