package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func TestContactsGroupsByFirstSeenOrder(t *testing.T) {
	rows := []types.Row{
		{ContactID: "b", Kind: types.KindNote, Note: "second contact first row"},
		{ContactID: "a", Kind: types.KindStructuredName, GivenName: "Ada"},
		{ContactID: "b", Kind: types.KindStructuredName, GivenName: "Blaise"},
		{ContactID: "c", Kind: types.KindPhone, PhoneNumber: "555-0001", PhoneType: types.PhoneTypeHome},
	}

	contacts := Contacts(rows, false)
	require.Len(t, contacts, 3)
	assert.Equal(t, "b", contacts[0].Identifier)
	assert.Equal(t, "a", contacts[1].Identifier)
	assert.Equal(t, "c", contacts[2].Identifier)
}

func TestContactsIsIdempotent(t *testing.T) {
	rows := []types.Row{
		{ContactID: "1", Kind: types.KindStructuredName, GivenName: "Grace", FamilyName: "Hopper", DisplayName: "Grace Hopper"},
		{ContactID: "1", Kind: types.KindPhone, PhoneNumber: "555-0100", PhoneType: types.PhoneTypeWork, DisplayName: "Grace Hopper"},
		{ContactID: "2", Kind: types.KindEmail, EmailAddress: "x@example.com", EmailType: types.EmailTypeHome},
		{ContactID: "1", Kind: types.KindPostal, City: "Arlington", PostalType: types.PostalTypeWork, DisplayName: "Grace Hopper"},
	}

	first := Contacts(rows, false)
	second := Contacts(rows, false)
	assert.Equal(t, first, second)
}

func TestContactsSpecimen(t *testing.T) {
	rows := []types.Row{
		{ContactID: "7", Kind: types.KindStructuredName, GivenName: "Ada", FamilyName: "Lovelace"},
		{ContactID: "7", Kind: types.KindPhone, PhoneNumber: "555-1212", PhoneType: types.PhoneTypeMobile},
		{ContactID: "7", Kind: types.KindEmail, EmailAddress: "", EmailType: types.EmailTypeHome},
	}

	contacts := Contacts(rows, false)
	require.Len(t, contacts, 1)

	c := contacts[0]
	assert.Equal(t, "7", c.Identifier)
	assert.Equal(t, "Ada", c.GivenName)
	assert.Equal(t, "Lovelace", c.FamilyName)
	require.Len(t, c.Phones, 1)
	assert.Equal(t, types.LabeledValue{Label: "Mobile", Value: "555-1212", Type: types.PhoneTypeMobile}, c.Phones[0])
	assert.Empty(t, c.Emails, "empty email address must be dropped")
}

func TestContactsSkipsEmptyPhoneAndEmail(t *testing.T) {
	rows := []types.Row{
		{ContactID: "1", Kind: types.KindPhone, PhoneNumber: "", PhoneType: types.PhoneTypeHome},
		{ContactID: "1", Kind: types.KindEmail, EmailAddress: "", EmailType: types.EmailTypeWork},
		{ContactID: "1", Kind: types.KindPhone, PhoneNumber: "555-2222", PhoneType: types.PhoneTypeHome},
	}

	contacts := Contacts(rows, false)
	require.Len(t, contacts, 1)
	assert.Len(t, contacts[0].Phones, 1)
	assert.Empty(t, contacts[0].Emails)
}

func TestContactsAlwaysAppendsPostalRows(t *testing.T) {
	rows := []types.Row{
		{ContactID: "1", Kind: types.KindPostal},
		{ContactID: "1", Kind: types.KindPostal, Street: "1 Main St", City: "Springfield", PostalType: types.PostalTypeHome},
	}

	contacts := Contacts(rows, false)
	require.Len(t, contacts, 1)
	require.Len(t, contacts[0].PostalAddresses, 2, "all-empty postal row is still appended")
	assert.Equal(t, "", contacts[0].PostalAddresses[0].Label, "zero type code is custom, so the empty raw label passes through")
	assert.Equal(t, "1 Main St", contacts[0].PostalAddresses[1].Street)
}

func TestContactsBirthdayOnlyFromBirthdayEvents(t *testing.T) {
	rows := []types.Row{
		{ContactID: "1", Kind: types.KindEvent, EventType: types.EventTypeAnniversary, EventStartDate: "2000-01-01"},
		{ContactID: "1", Kind: types.KindEvent, EventType: types.EventTypeBirthday, EventStartDate: "1815-12-10"},
		{ContactID: "1", Kind: types.KindEvent, EventType: types.EventTypeOther, EventStartDate: "1999-09-09"},
	}

	contacts := Contacts(rows, false)
	require.Len(t, contacts, 1)
	assert.Equal(t, "1815-12-10", contacts[0].Birthday, "non-birthday events must not alter the field")
}

func TestContactsLastWriteWinsForSingletonKinds(t *testing.T) {
	rows := []types.Row{
		{ContactID: "1", Kind: types.KindStructuredName, GivenName: "First", DisplayName: "First"},
		{ContactID: "1", Kind: types.KindOrganization, Company: "Acme", JobTitle: "Clerk", DisplayName: "Second"},
		{ContactID: "1", Kind: types.KindStructuredName, GivenName: "Second", DisplayName: "Second"},
		{ContactID: "1", Kind: types.KindNote, Note: "final note", DisplayName: "Second"},
	}

	contacts := Contacts(rows, false)
	require.Len(t, contacts, 1)
	c := contacts[0]
	assert.Equal(t, "Second", c.GivenName)
	assert.Equal(t, "Second", c.DisplayName)
	assert.Equal(t, "Acme", c.Company)
	assert.Equal(t, "final note", c.Note)
}

func TestContactsDropsUngroupableAndUnknownRows(t *testing.T) {
	rows := []types.Row{
		{ContactID: "", Kind: types.KindStructuredName, GivenName: "Nobody"},
		{ContactID: "1", Kind: types.RowKind("hologram")},
		{ContactID: "1", Kind: types.KindNote, Note: "kept"},
	}

	contacts := Contacts(rows, false)
	require.Len(t, contacts, 1)
	assert.Equal(t, "kept", contacts[0].Note)
}

func TestContactsWithoutNameRowsStillYieldsContact(t *testing.T) {
	rows := []types.Row{
		{ContactID: "9", Kind: types.KindPhone, PhoneNumber: "555-9999", PhoneType: types.PhoneTypeHome},
	}

	contacts := Contacts(rows, false)
	require.Len(t, contacts, 1)
	assert.Empty(t, contacts[0].GivenName)
	assert.Len(t, contacts[0].Phones, 1)
}

func TestContactsResolvesCustomLabels(t *testing.T) {
	rows := []types.Row{
		{ContactID: "1", Kind: types.KindPhone, PhoneNumber: "555-0000", PhoneType: types.TypeCustom, PhoneLabel: "Bat Phone"},
		{ContactID: "1", Kind: types.KindEmail, EmailAddress: "x@example.com", EmailType: types.TypeCustom, EmailLabel: "Carrier Pigeon"},
	}

	contacts := Contacts(rows, false)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Bat Phone", contacts[0].Phones[0].Label)
	assert.Equal(t, "Carrier Pigeon", contacts[0].Emails[0].Label)
}
