package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/bmicalc/internal/hcl"
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

// SetupAppTest builds an App with the HCL loader, capturing results and
// debug logs in separate buffers.
func SetupAppTest(t *testing.T, cfg Config, opts ...Option) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	outBuffer, logBuffer := &SafeBuffer{}, &SafeBuffer{}
	testApp, err := NewApp(outBuffer, logBuffer, appConfig, hcl.NewLoader(), opts...)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("BMICALC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
