// Shared helpers for rolodex CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/rolodex/internal/logger"
	"github.com/mesh-intelligence/rolodex/internal/service"
	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// openService resolves directories and configuration, opens the store,
// and builds the service. The returned closer drains the pool and closes
// the store; the caller must defer it.
func openService() (*service.Service, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		DataDir:    dataDir,
		Workers:    appWorkers,
		QueueDepth: appQueueDepth,
		LogMode:    appLogMode,
	}.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := sqlite.Open(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	svc := service.New(store, log, cfg)
	closer := func() {
		svc.Close()
		store.Close()
		log.Sync()
	}
	return svc, closer, nil
}

// listOptions builds ListOptions from the shared listing flags.
func listOptions() service.ListOptions {
	return service.ListOptions{
		Query:            flagListQuery,
		WithPhotos:       flagListPhotos,
		PhotoHighRes:     flagListHighRes,
		OrderByGivenName: flagListOrder,
		LocalizedLabels:  flagLocalized,
	}
}

// printContacts writes contacts as indented JSON with --json, otherwise
// one identifier/display-name line each.
func printContacts(contacts []*types.Contact) error {
	if flagJSON {
		return printJSON(contacts)
	}
	for _, c := range contacts {
		fmt.Printf("%s\t%s\n", c.Identifier, c.DisplayName)
	}
	return nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readContactArg reads a contact from the JSON file named by path, or
// from stdin when path is "-".
func readContactArg(path string) (*types.Contact, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read contact: %w", err)
	}

	var c types.Contact
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse contact: %w", err)
	}
	return &c, nil
}
