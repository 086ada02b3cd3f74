package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/bundlegrid/internal/hcl"
	"github.com/specialistvlad/bundlegrid/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// TestStreams holds the captured streams of an App under test.
type TestStreams struct {
	Out *SafeBuffer
	Err *SafeBuffer
}

// SetupAppTest creates a new app instance for system testing. stdin feeds the
// warning replay; the returned streams capture the plan and the logs.
func SetupAppTest(t *testing.T, appConfig *Config, stdin string, modules ...registry.Module) (*App, *TestStreams, error) {
	t.Helper()

	streams := &TestStreams{Out: &SafeBuffer{}, Err: &SafeBuffer{}}
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = "debug"
	}
	loader := hcl.NewLoader()
	if appConfig.Year > 0 {
		loader.Year = appConfig.Year
	}
	testApp, err := NewApp(Streams{
		In:  strings.NewReader(stdin),
		Out: streams.Out,
		Err: streams.Err,
	}, appConfig, loader, modules...)

	t.Cleanup(func() {
		if os.Getenv("BUNDLEGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), streams.Err.String())
		}
	})

	return testApp, streams, err
}
