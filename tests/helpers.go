package tests

import (
	"fmt"
	"testing"
	"time"

	"github.com/solsafe/solsafe/api"
	"github.com/solsafe/solsafe/api/client"
	"github.com/solsafe/solsafe/storage"
	"github.com/solsafe/solsafe/util"
	"go.vocdoni.io/dvote/db/metadb"
)

// SetupAPI creates and starts a new API server for testing.
// It returns the server port.
func SetupAPI(t *testing.T) (int, error) {
	tmpPort := util.RandomInt(40000, 60000)

	_, err := api.New(&api.APIConfig{
		Host:    "127.0.0.1",
		Port:    tmpPort,
		Storage: storage.New(metadb.NewTest(t)),
	})
	if err != nil {
		return 0, err
	}

	// Wait for the HTTP server to start
	time.Sleep(500 * time.Millisecond)
	return tmpPort, nil
}

// NewTestClient creates a new API client for testing.
func NewTestClient(port int) (*client.HTTPclient, error) {
	return client.New(fmt.Sprintf("http://127.0.0.1:%d", port))
}
