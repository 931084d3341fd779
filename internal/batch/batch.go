// Package batch derives ordered mutation batches from Contact values.
//
// Builders are pure functions from a read-only Contact to an operation
// list; they never touch the store and never mutate their input. The
// caller applies the whole list through Store.ApplyBatch as one atomic
// unit. Back-references in a built list only ever point at an earlier
// index, so a batch can be applied front to back in a single pass.
package batch

import (
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// updateDeleteKinds is the fixed category order in which update-mode
// batches drop existing rows before re-inserting. Structured name is
// absent: it is updated in place, never delete+insert.
var updateDeleteKinds = []types.RowKind{
	types.KindOrganization,
	types.KindPhone,
	types.KindEmail,
	types.KindNote,
	types.KindPostal,
	types.KindPhoto,
}

// BuildAdd builds the operation list that persists a new contact.
// Operation 0 inserts the raw-contact row; every data operation that
// follows back-references index 0, so the store resolves the identifier
// it assigns at apply time. The contact's own Identifier field is
// ignored; the store assigns a fresh one.
//
// The name, note, organization, photo, and birthday operations are
// emitted even when their fields are empty, matching replay behavior of
// the update path. The unconditional birthday insert mirrors the
// original system; see DESIGN.md before changing it.
func BuildAdd(c *types.Contact) []types.Operation {
	ops := []types.Operation{{
		Type:  types.OpInsert,
		Table: types.TableRawContacts,
		Values: map[string]any{
			types.ColAccountType: nil,
			types.ColAccountName: nil,
		},
	}}

	ref := types.BackRef(0)

	ops = append(ops, types.Operation{
		Type:   types.OpInsert,
		Table:  types.TableData,
		Kind:   types.KindStructuredName,
		Ref:    ref,
		Values: nameValues(c),
	})

	ops = append(ops, types.Operation{
		Type:   types.OpInsert,
		Table:  types.TableData,
		Kind:   types.KindNote,
		Ref:    ref,
		Values: map[string]any{types.ColNote: c.Note},
	})

	ops = append(ops, types.Operation{
		Type:  types.OpInsert,
		Table: types.TableData,
		Kind:  types.KindOrganization,
		Ref:   ref,
		Values: map[string]any{
			types.ColCompany:  c.Company,
			types.ColJobTitle: c.JobTitle,
		},
	})

	ops = append(ops, photoInsert(ref, c))

	for _, phone := range c.Phones {
		ops = append(ops, phoneInsert(ref, phone))
	}

	for _, email := range c.Emails {
		ops = append(ops, types.Operation{
			Type:  types.OpInsert,
			Table: types.TableData,
			Kind:  types.KindEmail,
			Ref:   ref,
			Values: map[string]any{
				types.ColEmailAddress: email.Value,
				types.ColEmailType:    email.Type,
			},
		})
	}

	for _, addr := range c.PostalAddresses {
		ops = append(ops, types.Operation{
			Type:  types.OpInsert,
			Table: types.TableData,
			Kind:  types.KindPostal,
			Ref:   ref,
			Values: map[string]any{
				types.ColPostalType:  addr.Type,
				types.ColPostalLabel: addr.Label,
				types.ColStreet:      addr.Street,
				types.ColCity:        addr.City,
				types.ColRegion:      addr.Region,
				types.ColPostcode:    addr.Postcode,
				types.ColCountry:     addr.Country,
			},
		})
	}

	ops = append(ops, types.Operation{
		Type:  types.OpInsert,
		Table: types.TableData,
		Kind:  types.KindEvent,
		Ref:   ref,
		Values: map[string]any{
			types.ColEventType:      types.EventTypeBirthday,
			types.ColEventStartDate: c.Birthday,
		},
	})

	return ops
}

// BuildUpdate builds the operation list that replaces a persisted
// contact's data with the given value: delete-all per category in the
// fixed order, an in-place structured-name update, then fresh inserts
// keyed by the literal identifier. Event rows are left untouched.
// Returns ErrInvalidIdentifier and no operations when the contact has no
// identifier.
func BuildUpdate(c *types.Contact) ([]types.Operation, error) {
	if c.Identifier == "" {
		return nil, types.ErrInvalidIdentifier
	}
	ref := types.LiteralRef(c.Identifier)

	var ops []types.Operation
	for _, kind := range updateDeleteKinds {
		ops = append(ops, types.Operation{
			Type:  types.OpDelete,
			Table: types.TableData,
			Kind:  kind,
			Ref:   ref,
		})
	}

	ops = append(ops, types.Operation{
		Type:   types.OpUpdate,
		Table:  types.TableData,
		Kind:   types.KindStructuredName,
		Ref:    ref,
		Values: nameValues(c),
	})

	ops = append(ops, types.Operation{
		Type:  types.OpInsert,
		Table: types.TableData,
		Kind:  types.KindOrganization,
		Ref:   ref,
		Values: map[string]any{
			types.ColOrgType:  types.OrgTypeWork,
			types.ColCompany:  c.Company,
			types.ColJobTitle: c.JobTitle,
		},
	})

	ops = append(ops, types.Operation{
		Type:   types.OpInsert,
		Table:  types.TableData,
		Kind:   types.KindNote,
		Ref:    ref,
		Values: map[string]any{types.ColNote: c.Note},
	})

	ops = append(ops, photoInsert(ref, c))

	for _, phone := range c.Phones {
		ops = append(ops, phoneInsert(ref, phone))
	}

	for _, email := range c.Emails {
		ops = append(ops, types.Operation{
			Type:  types.OpInsert,
			Table: types.TableData,
			Kind:  types.KindEmail,
			Ref:   ref,
			Values: map[string]any{
				types.ColEmailAddress: email.Value,
				types.ColEmailType:    email.Type,
			},
		})
	}

	// Postal re-inserts carry no label column; the original system had
	// the same asymmetry between add and update.
	for _, addr := range c.PostalAddresses {
		ops = append(ops, types.Operation{
			Type:  types.OpInsert,
			Table: types.TableData,
			Kind:  types.KindPostal,
			Ref:   ref,
			Values: map[string]any{
				types.ColPostalType: addr.Type,
				types.ColStreet:     addr.Street,
				types.ColCity:       addr.City,
				types.ColRegion:     addr.Region,
				types.ColPostcode:   addr.Postcode,
				types.ColCountry:    addr.Country,
			},
		})
	}

	return ops, nil
}

// BuildDelete builds the single-operation list that removes a contact.
// Dependent data rows cascade inside the store. Returns
// ErrInvalidIdentifier when the contact has no identifier.
func BuildDelete(c *types.Contact) ([]types.Operation, error) {
	if c.Identifier == "" {
		return nil, types.ErrInvalidIdentifier
	}
	return []types.Operation{{
		Type:  types.OpDelete,
		Table: types.TableRawContacts,
		Ref:   types.LiteralRef(c.Identifier),
	}}, nil
}

func nameValues(c *types.Contact) map[string]any {
	return map[string]any{
		types.ColGivenName:  c.GivenName,
		types.ColMiddleName: c.MiddleName,
		types.ColFamilyName: c.FamilyName,
		types.ColPrefix:     c.Prefix,
		types.ColSuffix:     c.Suffix,
	}
}

// phoneInsert builds a phone data insert. Custom-typed entries carry the
// custom type constant plus the literal label; every other entry carries
// only the resolved type code, never both.
func phoneInsert(ref types.ContactRef, phone types.LabeledValue) types.Operation {
	values := map[string]any{
		types.ColPhoneNumber: phone.Value,
	}
	if phone.Type == types.TypeCustom {
		values[types.ColPhoneType] = types.TypeCustom
		values[types.ColPhoneLabel] = phone.Label
	} else {
		values[types.ColPhoneType] = phone.Type
	}
	return types.Operation{
		Type:   types.OpInsert,
		Table:  types.TableData,
		Kind:   types.KindPhone,
		Ref:    ref,
		Values: values,
	}
}

// photoInsert builds the super-primary photo insert. Emitted even when
// the avatar is empty; the stored blob is only meaningful when non-empty.
func photoInsert(ref types.ContactRef, c *types.Contact) types.Operation {
	return types.Operation{
		Type:  types.OpInsert,
		Table: types.TableData,
		Kind:  types.KindPhoto,
		Ref:   ref,
		Values: map[string]any{
			types.ColSuperPrimary: 1,
			types.ColPhoto:        c.Avatar,
		},
	}
}
