package util

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateName(t *testing.T) {
	name := GenerateName()
	assert.GreaterOrEqual(t, len(name), 5)
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestAvailablePort(t *testing.T) {
	port, err := AvailablePort()
	require.NoError(t, err)
	assert.Greater(t, port, 0)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"nope"}`))
			return
		}
		_, _ = w.Write([]byte(`"OK"`))
	}))
	defer srv.Close()

	headers := map[string]string{"Accept": "application/json"}

	body, err := Fetch(context.Background(), http.MethodGet, srv.URL+"/", headers, nil)
	require.NoError(t, err)
	assert.Equal(t, `"OK"`, string(body))

	_, err = Fetch(context.Background(), http.MethodGet, srv.URL+"/missing", headers, nil)
	require.Error(t, err)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.JSONEq(t, `{"message":"nope"}`, string(se.Body))
}

func TestTimeTrackLogs(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stdout)

	TimeTrack(time.Now().Add(-time.Second), "calculate")

	assert.Contains(t, buf.String(), "calculate took 1")
	assert.Contains(t, buf.String(), "INFO")
}
