// End-to-end lifecycle coverage: create, list, search, update, photo
// retrieval, and delete against a real store.
package integration

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/mesh-intelligence/rolodex/internal/service"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func TestContactLifecycle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	c := types.NewContact("")
	c.GivenName = "Ada"
	c.FamilyName = "Lovelace"
	c.Company = "Analytical Engines"
	c.JobTitle = "Programmer"
	c.Note = "first"
	c.Birthday = "1815-12-10"
	c.Phones = []types.LabeledValue{
		{Value: "555-1212", Type: types.PhoneTypeMobile},
		{Label: "Engine Room", Value: "555-0000", Type: types.TypeCustom},
	}
	c.Emails = []types.LabeledValue{{Value: "ada@example.com", Type: types.EmailTypeWork}}
	c.PostalAddresses = []types.PostalAddress{
		{Label: "Home", Street: "1 St James Sq", City: "London", Type: types.PostalTypeHome},
	}
	c.Avatar = pngBytes(t, 128, 128)

	id := mustAdd(t, svc, c)
	if !isUUID(id) {
		t.Errorf("assigned identifier %q is not a UUID", id)
	}

	// Read back.
	got := mustGet(t, svc, id)
	if got.DisplayName != "Ada Lovelace" {
		t.Errorf("display name = %q, want %q", got.DisplayName, "Ada Lovelace")
	}
	if len(got.Phones) != 2 || got.Phones[1].Label != "Engine Room" {
		t.Errorf("phones = %+v, want custom label preserved", got.Phones)
	}
	if got.Birthday != "1815-12-10" {
		t.Errorf("birthday = %q", got.Birthday)
	}

	// Search by phone fragment returns the full contact.
	byPhone, err := svc.ListByPhone(ctx, "1212", service.ListOptions{})
	if err != nil {
		t.Fatalf("ListByPhone: %v", err)
	}
	if len(byPhone) != 1 || byPhone[0].Note != "first" {
		t.Errorf("phone search = %+v, want one fully populated contact", byPhone)
	}

	// Search by email builds the contact from the matched rows only.
	byEmail, err := svc.ListByEmail(ctx, "ada@", service.ListOptions{})
	if err != nil {
		t.Fatalf("ListByEmail: %v", err)
	}
	if len(byEmail) != 1 || len(byEmail[0].Emails) != 1 {
		t.Fatalf("email search = %+v, want one contact with the address", byEmail)
	}
	if byEmail[0].Note != "" {
		t.Errorf("email search carried note %q, want identity fields only", byEmail[0].Note)
	}

	// Photo retrieval: thumbnail tier is bounded, high-res keeps size.
	thumb, err := svc.GetPhoto(ctx, got, false)
	if err != nil {
		t.Fatalf("GetPhoto low-res: %v", err)
	}
	timg, err := png.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if timg.Bounds().Dx() > 96 || timg.Bounds().Dy() > 96 {
		t.Errorf("thumbnail bounds = %v, want within 96px", timg.Bounds())
	}

	full, err := svc.GetPhoto(ctx, got, true)
	if err != nil {
		t.Fatalf("GetPhoto high-res: %v", err)
	}
	fimg, err := png.Decode(bytes.NewReader(full))
	if err != nil {
		t.Fatalf("decode full photo: %v", err)
	}
	if fimg.Bounds().Dx() != 128 {
		t.Errorf("high-res width = %d, want 128", fimg.Bounds().Dx())
	}

	// Update replaces the multi-valued categories wholesale.
	upd := types.NewContact(id)
	upd.GivenName = "Ada"
	upd.FamilyName = "King"
	upd.Phones = []types.LabeledValue{{Value: "555-7777", Type: types.PhoneTypeHome}}
	if err := svc.UpdateContact(ctx, upd); err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}

	got = mustGet(t, svc, id)
	if got.FamilyName != "King" {
		t.Errorf("family name after update = %q, want %q", got.FamilyName, "King")
	}
	if len(got.Phones) != 1 || got.Phones[0].Value != "555-7777" {
		t.Errorf("phones after update = %+v, want the replacement only", got.Phones)
	}
	if got.Birthday != "1815-12-10" {
		t.Errorf("birthday after update = %q, event rows must survive", got.Birthday)
	}

	// Delete cascades everything.
	if err := svc.DeleteContact(ctx, &types.Contact{Identifier: id}); err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	gone, err := svc.GetByIdentifier(ctx, id, false)
	if err != nil {
		t.Fatalf("GetByIdentifier after delete: %v", err)
	}
	if gone != nil {
		t.Errorf("contact still present after delete: %+v", gone)
	}
	if remaining := mustList(t, svc, service.ListOptions{}); len(remaining) != 0 {
		t.Errorf("listing after delete = %d contacts, want 0", len(remaining))
	}
}

func TestListingOrderAndFilter(t *testing.T) {
	svc := setupService(t)

	for _, name := range []string{"Charlie", "Ada", "Blaise"} {
		c := types.NewContact("")
		c.GivenName = name
		mustAdd(t, svc, c)
	}

	byInsertion := mustList(t, svc, service.ListOptions{})
	wantInsertion := []string{"Charlie", "Ada", "Blaise"}
	for i, want := range wantInsertion {
		if byInsertion[i].GivenName != want {
			t.Errorf("insertion order[%d] = %q, want %q", i, byInsertion[i].GivenName, want)
		}
	}

	byName := mustList(t, svc, service.ListOptions{OrderByGivenName: true})
	wantSorted := []string{"Ada", "Blaise", "Charlie"}
	for i, want := range wantSorted {
		if byName[i].GivenName != want {
			t.Errorf("sorted order[%d] = %q, want %q", i, byName[i].GivenName, want)
		}
	}

	filtered := mustList(t, svc, service.ListOptions{Query: "B"})
	if len(filtered) != 1 || filtered[0].GivenName != "Blaise" {
		t.Errorf("prefix filter = %+v, want Blaise only", filtered)
	}
}

func TestConcurrentReads(t *testing.T) {
	svc := setupService(t)

	c := types.NewContact("")
	c.GivenName = "Grace"
	c.Phones = []types.LabeledValue{{Value: "555-0100", Type: types.PhoneTypeWork}}
	id := mustAdd(t, svc, c)

	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func() {
			_, err := svc.GetByIdentifier(context.Background(), id, false)
			done <- err
		}()
	}
	for i := 0; i < 20; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent read %d: %v", i, err)
		}
	}
}

func TestEmptyAvatarIsNonNilWhenRequested(t *testing.T) {
	svc := setupService(t)

	c := types.NewContact("")
	c.GivenName = "Blank"
	mustAdd(t, svc, c)

	contacts := mustList(t, svc, service.ListOptions{WithPhotos: true})
	if len(contacts) != 1 {
		t.Fatalf("listed %d contacts, want 1", len(contacts))
	}
	if contacts[0].Avatar == nil {
		t.Error("avatar is nil, want empty slice")
	}
	if len(contacts[0].Avatar) != 0 {
		t.Errorf("avatar has %d bytes, want none", len(contacts[0].Avatar))
	}
}
