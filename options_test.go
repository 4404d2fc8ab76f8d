package deploycheck

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validation(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"zero interval", WithInterval(0)},
		{"negative interval", WithInterval(-time.Second)},
		{"nil logger", WithLogger(nil)},
		{"nil writer", WithWriter(nil)},
		{"nil http client", WithHTTPClient(nil)},
		{"nil runner", WithRunner(nil)},
		{"empty base URL", WithCIBaseURL("")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mon, err := New(testConfig(""), tc.opt)
			require.Error(t, err)
			assert.Nil(t, mon)
			assert.Contains(t, err.Error(), "invalid option")
		})
	}
}

func TestOptions_Applied(t *testing.T) {
	client := &http.Client{Timeout: time.Second}
	mon, err := New(testConfig("http://localhost/health"),
		WithInterval(time.Minute),
		WithLogger(testLogger()),
		WithHTTPClient(client),
		WithRunner(healthyRunner()),
	)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mon.interval)
}

func TestNew_DefaultInterval(t *testing.T) {
	mon, err := New(testConfig(""))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, mon.interval)
}
