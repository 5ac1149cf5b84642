// solsafed runs the local dispute-resolution daemon: it keeps the juror's
// vote commitment secrets and the evidence bundle metadata in a local
// database and exposes the HTTP API to drive the commit/reveal and
// evidence flows.
package main

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/solsafe/solsafe/api"
	"github.com/solsafe/solsafe/log"
	"github.com/solsafe/solsafe/storage"
	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/metadb"
)

func main() {
	var dataDir, host, logLevel string
	var port int
	flag.StringVar(&dataDir, "dataDir", func() string {
		home, err := os.UserHomeDir()
		if err != nil {
			return ".solsafe"
		}
		return filepath.Join(home, ".solsafe")
	}(), "data directory for the local database")
	flag.StringVar(&host, "host", "0.0.0.0", "API host to bind")
	flag.IntVar(&port, "port", 8080, "API port to bind")
	flag.StringVar(&logLevel, "logLevel", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log.Init(logLevel, "stdout", nil)

	database, err := metadb.New(db.TypePebble, filepath.Join(dataDir, "db"))
	if err != nil {
		log.Fatalf("could not open database: %v", err)
	}
	stg := storage.New(database)
	defer stg.Close()

	if _, err := api.New(&api.APIConfig{
		Host:    host,
		Port:    port,
		Storage: stg,
	}); err != nil {
		log.Fatalf("could not start API: %v", err)
	}
	log.Infow("solsafed started", "dataDir", dataDir, "host", host, "port", port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")
}
