package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/holdtrack/internal/cli"
	"github.com/rshade/holdtrack/internal/config"
	"github.com/rshade/holdtrack/internal/holders"
)

// setupCLITest isolates config and logging from the developer's machine.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvPageSize, "")
	t.Setenv(config.EnvOutputFormat, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// holdersAPI serves total holders through a cursor that is the next offset.
type holdersAPI struct {
	total     int
	lastBlock int64
	// failAt makes the request for this cursor fail with a 503.
	failAt string

	mu      sync.Mutex
	cursors []string
}

func (h *holdersAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/status":
		_ = json.NewEncoder(w).Encode(map[string]int64{"last_block": h.lastBlock})
		return
	case "/holders":
	default:
		http.NotFound(w, r)
		return
	}

	cursor := r.URL.Query().Get("cursor")
	h.mu.Lock()
	h.cursors = append(h.cursors, cursor)
	h.mu.Unlock()

	if h.failAt != "" && cursor == h.failAt {
		http.Error(w, "indexer catching up", http.StatusServiceUnavailable)
		return
	}

	offset, _ := strconv.Atoi(cursor)
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		http.Error(w, "bad limit", http.StatusBadRequest)
		return
	}

	end := min(offset+limit, h.total)
	page := holders.Page{Items: make([]holders.Holder, 0, end-offset)}
	for i := offset; i < end; i++ {
		page.Items = append(page.Items, holders.Holder{
			Address: fmt.Sprintf("0x%040d", i),
			Balance: fmt.Sprintf("%d500000000000000000", i+1),
		})
	}
	if end < h.total {
		page.NextCursor = strconv.Itoa(end)
	}
	_ = json.NewEncoder(w).Encode(page)
}

func (h *holdersAPI) requested() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.cursors...)
}

func startAPI(t *testing.T, h *holdersAPI) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err, out)
	return out
}
