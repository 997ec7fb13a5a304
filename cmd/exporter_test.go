package cmd

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"magewell-cli/internal/client"
)

func newDevice(t *testing.T, replies map[string]string, logins *int32) *client.MagewellClient {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.URL.Query().Get("method")
		if method == "login" && logins != nil {
			atomic.AddInt32(logins, 1)
		}
		fmt.Fprint(w, replies[method])
	}))
	t.Cleanup(ts.Close)

	return client.New(client.ClientConfig{
		Address:  strings.TrimPrefix(ts.URL, "http://"),
		Username: "Admin",
		Password: "Admin",
		Logger:   log.New(io.Discard, "", 0),
	})
}

func gather(t *testing.T, c prometheus.Collector) map[string]*dto.MetricFamily {
	t.Helper()
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))
	mfs, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		out[mf.GetName()] = mf
	}
	return out
}

func TestSwitcherCollector(t *testing.T) {
	api := newDevice(t, map[string]string{
		"login":       `{"status":0}`,
		"get-channel": `{"status":0,"name":"CAM-1","ndi-name":"HOST (CAM-1)"}`,
		"get-ndi-sources": `{"status":0,"sources":[
			{"ndi-name":"HOST (CAM-1)","ip-addr":"10.0.0.5"},
			{"ndi-name":"HOST (CAM-1)","ip-addr":"10.0.0.5"},
			{"ndi-name":"HOST (CAM-2)","ip-addr":"10.0.0.6"}]}`,
	}, nil)

	mfs := gather(t, &SwitcherCollector{Client: api})

	require.Contains(t, mfs, "magewell_up")
	assert.Equal(t, 1.0, mfs["magewell_up"].GetMetric()[0].GetGauge().GetValue())

	require.Contains(t, mfs, "magewell_ndi_sources_total")
	assert.Equal(t, 3.0, mfs["magewell_ndi_sources_total"].GetMetric()[0].GetGauge().GetValue())

	require.Contains(t, mfs, "magewell_ndi_source_info")
	assert.Len(t, mfs["magewell_ndi_source_info"].GetMetric(), 2)

	require.Contains(t, mfs, "magewell_channel_info")
	labels := map[string]string{}
	for _, lp := range mfs["magewell_channel_info"].GetMetric()[0].GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	assert.Equal(t, map[string]string{"name": "CAM-1", "ndi": "true"}, labels)
}

func TestSwitcherCollector_RetriesWithLogin(t *testing.T) {
	var logins int32
	api := newDevice(t, map[string]string{
		"login":           `{"status":0}`,
		"get-channel":     `{"status":1}`,
		"get-ndi-sources": `{"status":0}`,
	}, &logins)

	mfs := gather(t, &SwitcherCollector{Client: api})

	assert.Equal(t, 0.0, mfs["magewell_up"].GetMetric()[0].GetGauge().GetValue())
	assert.NotContains(t, mfs, "magewell_channel_info")
	assert.Equal(t, 0.0, mfs["magewell_ndi_sources_total"].GetMetric()[0].GetGauge().GetValue())
	// one implicit login plus one retry login for the failed channel call
	assert.Equal(t, int32(2), atomic.LoadInt32(&logins))
}
