//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// MongoURIEnv points integration tests at an existing server instead of
// starting a container, e.g. a CI service container.
const MongoURIEnv = "MAPSIM_TEST_MONGO_URI"

var shared struct {
	once      sync.Once
	container *MongoDBContainer
	uri       string
	err       error
}

// GetSharedMongoDB starts the package-wide MongoDB on first use and returns its
// URI. With MongoURIEnv set no container is started.
func GetSharedMongoDB(ctx context.Context) (string, error) {
	shared.once.Do(func() {
		if uri := os.Getenv(MongoURIEnv); uri != "" {
			shared.uri = uri
			return
		}
		shared.container, shared.err = SetupMongoDB(ctx)
		if shared.err == nil {
			shared.uri = shared.container.URI
		}
	})
	return shared.uri, shared.err
}

// SetupTestMainWithMongoDB starts the shared server, runs the tests and tears
// the container down.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "integration MongoDB unavailable: %v\n", err)
		return 1
	}

	code := m.Run()

	if shared.container != nil {
		if err := shared.container.Cleanup(ctx); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "warning: MongoDB container cleanup: %v\n", err)
		}
	}
	return code
}

// GetSharedContainerURI returns the shared server URI. It panics before
// GetSharedMongoDB has succeeded.
func GetSharedContainerURI() string {
	if shared.uri == "" {
		panic("shared MongoDB not initialized; call SetupTestMainWithMongoDB from TestMain")
	}
	return shared.uri
}

var dbNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "$", "_", `"`, "_")

// SanitizeDBName turns a test name into a unique, valid MongoDB database name.
// Names are capped well below MongoDB's 64-byte limit.
func SanitizeDBName(testName string) string {
	name := dbNameReplacer.Replace(testName)
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}
