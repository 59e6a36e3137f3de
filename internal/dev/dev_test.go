package dev

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hypertext-dev/hypertext/internal/config"
)

func startWatcher(t *testing.T, dir string) (*Watcher, <-chan []Change) {
	t.Helper()

	w, err := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Debounce: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}

	batches := make(chan []Change, 10)
	w.OnChange(func(c []Change) {
		batches <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = w.Start(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		w.Close()
	})
	return w, batches
}

func waitBatch(t *testing.T, batches <-chan []Change) []Change {
	t.Helper()
	select {
	case b := <-batches:
		return b
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change")
		return nil
	}
}

func TestWatcher_ModifiedFile(t *testing.T) {
	tmpDir := t.TempDir()
	page := filepath.Join(tmpDir, "index.yaml")
	if err := os.WriteFile(page, []byte("tag: p"), 0644); err != nil {
		t.Fatal(err)
	}

	_, batches := startWatcher(t, tmpDir)

	if err := os.WriteFile(page, []byte("tag: div"), 0644); err != nil {
		t.Fatal(err)
	}

	batch := waitBatch(t, batches)
	if len(batch) != 1 {
		t.Fatalf("expected 1 change, got %v", batch)
	}
	if batch[0].Path != page || batch[0].Type != ChangePage {
		t.Errorf("unexpected change %+v", batch[0])
	}
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	tmpDir := t.TempDir()
	_, batches := startWatcher(t, tmpDir)

	for _, name := range []string{"a.md", "b.md", "style.css"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	var got []Change
	deadline := time.After(2 * time.Second)
	for len(got) < 3 {
		select {
		case b := <-batches:
			got = append(got, b...)
		case <-deadline:
			t.Fatalf("timeout, got %v", got)
		}
	}

	seen := map[string]ChangeType{}
	for _, c := range got {
		seen[filepath.Base(c.Path)] = c.Type
	}
	if seen["a.md"] != ChangePage || seen["b.md"] != ChangePage || seen["style.css"] != ChangeCSS {
		t.Errorf("unexpected changes %v", seen)
	}
}

func TestWatcher_NewSubdirectory(t *testing.T) {
	tmpDir := t.TempDir()
	_, batches := startWatcher(t, tmpDir)

	sub := filepath.Join(tmpDir, "guide")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	// Give the watcher a moment to pick up the directory.
	time.Sleep(100 * time.Millisecond)

	page := filepath.Join(sub, "intro.md")
	if err := os.WriteFile(page, []byte("# Intro"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case b := <-batches:
			for _, c := range b {
				if c.Path == page {
					return
				}
			}
		case <-deadline:
			t.Fatal("change in new subdirectory was not reported")
		}
	}
}

func TestWatcher_IgnoresPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	_, batches := startWatcher(t, tmpDir)

	if err := os.WriteFile(filepath.Join(tmpDir, "page.md.swp"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case b := <-batches:
		t.Fatalf("ignored file reported: %v", b)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_ShouldIgnore(t *testing.T) {
	w := &Watcher{config: WatcherConfig{
		Paths:   []string{"/site/pages", "/site/hypertext.yaml"},
		Ignore:  []string{".git", "*.swp", "drafts/old", "build/*.html"},
		Exclude: []string{"/site/pages/public"},
	}}

	tests := []struct {
		path string
		want bool
	}{
		{"/site/pages/.git/HEAD", true},
		{"/site/pages/a.md.swp", true},
		{"/site/pages/drafts/old/x.md", true},
		{"/site/pages/build/index.html", true},
		{"/site/pages/public/index.html", true},
		{"/site/pages/publicity.md", false},
		{"/site/pages/drafts/new.md", false},
		{"/site/pages/index.yaml", false},
		{"/site/hypertext.yaml", false},
	}
	for _, tt := range tests {
		if got := w.shouldIgnore(tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcher_IgnoreIsRelativeToRoot(t *testing.T) {
	w := &Watcher{config: WatcherConfig{
		Paths:  []string{"/home/dist/site/pages"},
		Ignore: []string{"dist", ".git"},
	}}

	if w.shouldIgnore("/home/dist/site/pages/index.yaml") {
		t.Error("a project below a directory named like an ignore pattern must still be watched")
	}
	if !w.shouldIgnore("/home/dist/site/pages/dist/index.html") {
		t.Error("ignore patterns should still match inside the watched root")
	}
}

func TestWatcher_ProjectUnderIgnoredName(t *testing.T) {
	base := filepath.Join(t.TempDir(), "node_modules", "site")
	if err := os.MkdirAll(base, 0755); err != nil {
		t.Fatal(err)
	}
	_, batches := startWatcher(t, base)

	if err := os.WriteFile(filepath.Join(base, "index.yaml"), []byte("tag: p\n"), 0644); err != nil {
		t.Fatal(err)
	}
	batch := waitBatch(t, batches)
	if len(batch) != 1 || filepath.Base(batch[0].Path) != "index.yaml" {
		t.Errorf("batch = %v, want index.yaml", batch)
	}
}

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"index.yaml", ChangePage},
		{"index.YML", ChangePage},
		{"guide.md", ChangePage},
		{"site.css", ChangeCSS},
		{"logo.png", ChangeAsset},
	}
	for _, tt := range tests {
		if got := classifyChange(tt.path); got != tt.want {
			t.Errorf("classifyChange(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOnlyCSS(t *testing.T) {
	if OnlyCSS(nil) {
		t.Error("empty batch is not CSS-only")
	}
	if !OnlyCSS([]Change{{Path: "a.css", Type: ChangeCSS}}) {
		t.Error("expected CSS-only")
	}
	if OnlyCSS([]Change{{Path: "a.css", Type: ChangeCSS}, {Path: "b.md", Type: ChangePage}}) {
		t.Error("mixed batch is not CSS-only")
	}
}

func TestCollectWatchPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.Dev.Paths = []string{"assets", "pages", filepath.Join(dir, "shared")}
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	got := CollectWatchPaths(cfg)
	want := []string{
		filepath.Join(dir, "pages"),
		filepath.Join(dir, config.ConfigFileName),
		filepath.Join(dir, "assets"),
		filepath.Join(dir, "shared"),
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("CollectWatchPaths() = %v, want %v", got, want)
	}
}

func TestWatchConfigExcludesOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.Source = "."
	cfg.Output = "public"
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	wc := WatchConfig(cfg)
	if strings.Join(wc.Exclude, ",") != filepath.Join(dir, "public") {
		t.Errorf("Exclude = %v, want the output directory", wc.Exclude)
	}

	w := &Watcher{config: wc}
	w.config.Ignore = DefaultIgnore
	if !w.shouldIgnore(filepath.Join(dir, "public", "index.html")) {
		t.Error("build output should be ignored")
	}
	if w.shouldIgnore(filepath.Join(dir, "index.yaml")) {
		t.Error("page sources should be watched")
	}
	if w.shouldIgnore(filepath.Join(dir, "dist", "notes.md")) {
		t.Error("dist is only ignored when it is the configured output")
	}
}

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + ReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("invalid message %q: %v", data, err)
	}
	return msg
}

func TestHub_Broadcasts(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	var seen []MessageType
	hub.OnBroadcast(func(m Message) { seen = append(seen, m.Type) })

	conn := dialHub(t, hub)

	hub.NotifyReload()
	if msg := readMessage(t, conn); msg.Type != MessageReload {
		t.Errorf("got %+v, want reload", msg)
	}

	hub.NotifyError("H010: void element has children")
	msg := readMessage(t, conn)
	if msg.Type != MessageError || !strings.Contains(msg.Error, "H010") {
		t.Errorf("got %+v, want error message", msg)
	}

	hub.NotifyCSS("site.css")
	if msg := readMessage(t, conn); msg.Type != MessageCSS || msg.File != "site.css" {
		t.Errorf("got %+v, want css message", msg)
	}

	hub.ClearError()
	if msg := readMessage(t, conn); msg.Type != MessageClear {
		t.Errorf("got %+v, want clear", msg)
	}

	if len(seen) != 4 {
		t.Errorf("OnBroadcast saw %v, want 4 messages", seen)
	}
}

func TestHub_ClientDisconnect(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client was not removed after disconnect")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestClientScript(t *testing.T) {
	if !strings.Contains(ClientScript, ReloadPath) {
		t.Error("client script must connect to the reload path")
	}
	if !strings.HasPrefix(strings.TrimSpace(ClientScript), "<script>") {
		t.Error("client script must be a script element")
	}
}
