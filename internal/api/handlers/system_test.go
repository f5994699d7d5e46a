package handlers_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/dom/floricola-erp/internal/api/handlers"
	"github.com/dom/floricola-erp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHandler_Health(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.Do(t, http.MethodGet, ts.URL("/health"), nil, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body handlers.HealthResponse
	testutil.AssertJSONResponse(t, resp, &body)
	assert.True(t, body.OK)
	assert.NotEmpty(t, body.Message)
}

func TestSystemHandler_Init(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		path    string
		wantMsg string
	}{
		{path: "/init", wantMsg: "Tabla clientes lista"},
		{path: "/init-users", wantMsg: "Tabla users lista"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			// twice: schema initialization is idempotent
			for i := 0; i < 2; i++ {
				resp := testutil.Do(t, http.MethodGet, ts.URL(tt.path), nil, "")
				require.Equal(t, http.StatusOK, resp.StatusCode)

				var body handlers.InitResponse
				testutil.AssertJSONResponse(t, resp, &body)
				resp.Body.Close()
				assert.True(t, body.OK)
				assert.Equal(t, tt.wantMsg, body.Msg)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.Do(t, http.MethodGet, ts.URL("/me"), nil, "")
	resp.Body.Close()

	resp = testutil.Do(t, http.MethodGet, ts.URL("/metrics"), nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `erp_auth_events_total{event="gate",outcome="missing_token"} 1`)
	assert.Contains(t, string(body), `erp_http_requests_total{method="GET",route="/me",status="401"} 1`)
}
