package inspect

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cellkit-dev/cellkit/pkg/cell"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	count := cell.NewValue(5, cell.WithName[int]("count"))

	if err := reg.Register(count); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(count); err == nil {
		t.Errorf("duplicate registration should fail")
	}

	snapshot := reg.Snapshot()
	if snapshot["count"] != 5 {
		t.Errorf("snapshot = %v, want count:5", snapshot)
	}

	reg.Unregister("count")
	if names := reg.Names(); len(names) != 0 {
		t.Errorf("names after unregister = %v", names)
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	reg := NewRegistry()
	reg.Register(cell.NewValue(5, cell.WithName[int]("count")))
	reg.Register(cell.NewValue("dark", cell.WithName[string]("theme")))

	srv := httptest.NewServer(NewServer(reg).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cells")
	if err != nil {
		t.Fatalf("GET /cells: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var snapshot map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// JSON numbers decode as float64.
	if snapshot["count"] != float64(5) || snapshot["theme"] != "dark" {
		t.Errorf("snapshot = %v", snapshot)
	}
}

func TestSingleCellEndpoint(t *testing.T) {
	reg := NewRegistry()
	reg.Register(cell.NewValue(5, cell.WithName[int]("count")))

	srv := httptest.NewServer(NewServer(reg).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cells/count")
	if err != nil {
		t.Fatalf("GET /cells/count: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/cells/nope")
	if err != nil {
		t.Fatalf("GET /cells/nope: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing cell status = %d, want 404", resp.StatusCode)
	}
}

func TestStreamDeliversChanges(t *testing.T) {
	reg := NewRegistry()
	count := cell.NewValue(0, cell.WithName[int]("count"))
	reg.Register(count)

	srv := httptest.NewServer(NewServer(reg).Handler())
	defer srv.Close()

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	count.Set(42)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var ev changeEvent
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if ev.Cell != "count" || ev.Value != float64(42) {
		t.Errorf("event = %+v", ev)
	}
}
