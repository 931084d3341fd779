// Package aggregate folds the flat row stream read from the store into
// structured Contact values, and orders the result on request.
package aggregate

import (
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Contacts materializes Contact entities from an ordered row stream.
// Output order is the first-seen order of contact identifiers in the
// stream, which doubles as the default listing order. Rows with an empty
// contact identifier cannot be grouped and are dropped. Malformed rows
// never produce an error; fields degrade to their zero values instead.
//
// Re-running on the same stream yields an identical contact sequence:
// singleton fields are last-write-wins per kind and the multi-valued
// slices append in stream order.
func Contacts(rows []types.Row, localized bool) []*types.Contact {
	byID := make(map[string]*types.Contact)
	var order []string

	for _, row := range rows {
		if row.ContactID == "" {
			continue
		}
		contact, ok := byID[row.ContactID]
		if !ok {
			contact = types.NewContact(row.ContactID)
			byID[row.ContactID] = contact
			order = append(order, row.ContactID)
		}

		// Present on every row regardless of kind; a later row's value
		// for the same contact overwrites earlier ones.
		contact.DisplayName = row.DisplayName
		contact.AccountType = row.AccountType
		contact.AccountName = row.AccountName

		switch row.Kind {
		case types.KindStructuredName:
			contact.GivenName = row.GivenName
			contact.MiddleName = row.MiddleName
			contact.FamilyName = row.FamilyName
			contact.Prefix = row.Prefix
			contact.Suffix = row.Suffix
		case types.KindNote:
			contact.Note = row.Note
		case types.KindPhone:
			if row.PhoneNumber != "" {
				label := types.ResolveLabel(types.CategoryPhone, row.PhoneType, row.PhoneLabel, localized)
				contact.Phones = append(contact.Phones, types.LabeledValue{
					Label: label,
					Value: row.PhoneNumber,
					Type:  row.PhoneType,
				})
			}
		case types.KindEmail:
			if row.EmailAddress != "" {
				label := types.ResolveLabel(types.CategoryEmail, row.EmailType, row.EmailLabel, localized)
				contact.Emails = append(contact.Emails, types.LabeledValue{
					Label: label,
					Value: row.EmailAddress,
					Type:  row.EmailType,
				})
			}
		case types.KindOrganization:
			contact.Company = row.Company
			contact.JobTitle = row.JobTitle
		case types.KindPostal:
			// Appended even when every sub-field is empty.
			label := types.ResolveLabel(types.CategoryPostal, row.PostalType, row.PostalLabel, localized)
			contact.PostalAddresses = append(contact.PostalAddresses, types.PostalAddress{
				Label:    label,
				Street:   row.Street,
				City:     row.City,
				Region:   row.Region,
				Postcode: row.Postcode,
				Country:  row.Country,
				Type:     row.PostalType,
			})
		case types.KindEvent:
			if row.EventType == types.EventTypeBirthday {
				contact.Birthday = row.EventStartDate
			}
		}
	}

	contacts := make([]*types.Contact, 0, len(order))
	for _, id := range order {
		contacts = append(contacts, byID[id])
	}
	return contacts
}
