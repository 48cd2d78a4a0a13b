package inbox

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orchardlog/pkg/transfer"
)

// recordingImporter parses for real but only records what it would have replaced.
type recordingImporter struct {
	mu    sync.Mutex
	calls int
}

func (r *recordingImporter) Import(_ context.Context, rd io.Reader) (transfer.ImportResult, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	p, err := transfer.ParseBackup(rd)
	if err != nil {
		return transfer.ImportResult{}, err
	}
	return transfer.ImportResult{Logs: len(p.Logs)}, nil
}

func (r *recordingImporter) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestScan_RenamesByOutcome(t *testing.T) {
	dir := t.TempDir()
	good := write(t, dir, "good.json", `{"logs": []}`)
	bad := write(t, dir, "bad.json", `{"nothing": true}`)
	write(t, dir, "notes.txt", `ignored`)

	im := &recordingImporter{}
	New(dir, im).Scan(context.Background())

	assert.Equal(t, 2, im.Calls())
	assert.FileExists(t, good+ImportedSuffix)
	assert.FileExists(t, bad+RejectedSuffix)
	assert.NoFileExists(t, good)
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestRun_ImportsDroppedFile(t *testing.T) {
	dir := t.TempDir()
	im := &recordingImporter{}
	w := New(dir, im)
	w.Settle = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher time to register before dropping the file
	time.Sleep(100 * time.Millisecond)
	p := write(t, dir, "drop.json", `{"logs": [{"id": "1", "date": "2024-01-01", "type": "irrigation", "blockId": "A", "details": "", "createdAt": 1}]}`)

	require.Eventually(t, func() bool {
		_, err := os.Stat(p + ImportedSuffix)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
