// Package integration exercises the full contact stack end to end: the
// service façade over a real SQLite store in a temp directory.
package integration

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/mesh-intelligence/rolodex/internal/logger"
	"github.com/mesh-intelligence/rolodex/internal/service"
	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// setupService builds a service over an isolated store. Each test gets
// its own database file.
func setupService(t *testing.T) *service.Service {
	t.Helper()
	store, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	svc := service.New(store, logger.Nop(), types.Config{DataDir: "x"})
	t.Cleanup(func() {
		svc.Close()
		store.Close()
	})
	return svc
}

// mustAdd persists the contact and returns the identifier the store
// assigned, located through a display-name lookup.
func mustAdd(t *testing.T, svc *service.Service, c *types.Contact) string {
	t.Helper()
	ctx := context.Background()
	if err := svc.AddContact(ctx, c); err != nil {
		t.Fatalf("AddContact: %v", err)
	}

	contacts := mustList(t, svc, service.ListOptions{Query: c.GivenName})
	if len(contacts) == 0 {
		t.Fatalf("added contact %q not listed", c.GivenName)
	}
	return contacts[len(contacts)-1].Identifier
}

// mustList runs a listing or fails the test.
func mustList(t *testing.T, svc *service.Service, opts service.ListOptions) []*types.Contact {
	t.Helper()
	contacts, err := svc.ListContacts(context.Background(), opts)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	return contacts
}

// mustGet fetches one contact by identifier or fails the test.
func mustGet(t *testing.T, svc *service.Service, id string) *types.Contact {
	t.Helper()
	c, err := svc.GetByIdentifier(context.Background(), id, false)
	if err != nil {
		t.Fatalf("GetByIdentifier(%q): %v", id, err)
	}
	if c == nil {
		t.Fatalf("GetByIdentifier(%q): no contact", id)
	}
	return c
}

// pngBytes encodes a blank image of the given size.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// isUUID checks the 8-4-4-4-12 layout of store-assigned identifiers.
func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	return s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-'
}
