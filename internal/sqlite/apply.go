package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// dataColumns is the canonical column order for data-table writes. Insert
// and update statements include exactly the columns present in an
// operation's Values, in this order, so generated SQL is deterministic.
var dataColumns = []string{
	types.ColGivenName,
	types.ColMiddleName,
	types.ColFamilyName,
	types.ColPrefix,
	types.ColSuffix,
	types.ColNote,
	types.ColPhoneNumber,
	types.ColPhoneType,
	types.ColPhoneLabel,
	types.ColEmailAddress,
	types.ColEmailType,
	types.ColEmailLabel,
	types.ColCompany,
	types.ColJobTitle,
	types.ColOrgType,
	types.ColStreet,
	types.ColCity,
	types.ColRegion,
	types.ColPostcode,
	types.ColCountry,
	types.ColPostalType,
	types.ColPostalLabel,
	types.ColEventType,
	types.ColEventStartDate,
	types.ColPhoto,
	types.ColSuperPrimary,
}

// ApplyBatch applies ops inside a single transaction. Either every
// operation takes effect or none do. Inserts into raw_contacts assign a
// fresh identifier which later operations reach through back-references;
// a back-reference to a later index or to an operation that assigned no
// identifier fails the whole batch with ErrBadOperation.
func (s *Store) ApplyBatch(ctx context.Context, ops []types.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return types.ErrStoreFailure
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}

	assigned := make([]string, len(ops))
	for i, op := range ops {
		if err := applyOne(ctx, tx, i, op, assigned); err != nil {
			tx.Rollback()
			return fmt.Errorf("batch op %d (%s %s): %w", i, op.Type, op.Table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

func applyOne(ctx context.Context, tx *sql.Tx, index int, op types.Operation, assigned []string) error {
	switch op.Table {
	case types.TableRawContacts:
		switch op.Type {
		case types.OpInsert:
			id, err := insertRawContact(ctx, tx, op)
			if err != nil {
				return err
			}
			assigned[index] = id
			return nil
		case types.OpDelete:
			id, err := resolveRef(op.Ref, index, assigned)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, "DELETE FROM raw_contacts WHERE contact_id = ?", id)
			return err
		}
	case types.TableData:
		id, err := resolveRef(op.Ref, index, assigned)
		if err != nil {
			return err
		}
		switch op.Type {
		case types.OpInsert:
			return insertData(ctx, tx, id, op)
		case types.OpUpdate:
			return updateData(ctx, tx, id, op)
		case types.OpDelete:
			_, err := tx.ExecContext(ctx,
				"DELETE FROM data WHERE contact_id = ? AND kind = ?", id, string(op.Kind))
			return err
		}
	}
	return types.ErrBadOperation
}

// resolveRef turns a ContactRef into a concrete identifier. Back-references
// must point at an earlier operation that assigned one.
func resolveRef(ref types.ContactRef, index int, assigned []string) (string, error) {
	if ref.IsBackRef {
		if ref.Index < 0 || ref.Index >= index || assigned[ref.Index] == "" {
			return "", types.ErrBadOperation
		}
		return assigned[ref.Index], nil
	}
	if ref.ID == "" {
		return "", types.ErrInvalidIdentifier
	}
	return ref.ID, nil
}

func insertRawContact(ctx context.Context, tx *sql.Tx, op types.Operation) (string, error) {
	id := newUUID()
	now := time.Now().Format(time.RFC3339)
	_, err := tx.ExecContext(ctx, `
		INSERT INTO raw_contacts (contact_id, account_type, account_name, display_name, created_at, updated_at)
		VALUES (?, ?, ?, '', ?, ?)`,
		id, op.Values[types.ColAccountType], op.Values[types.ColAccountName], now, now)
	if err != nil {
		return "", fmt.Errorf("insert raw contact: %w", err)
	}
	return id, nil
}

func insertData(ctx context.Context, tx *sql.Tx, contactID string, op types.Operation) error {
	cols := []string{"data_id", "contact_id", "kind"}
	args := []any{newUUID(), contactID, string(op.Kind)}
	for _, col := range dataColumns {
		if v, ok := op.Values[col]; ok {
			cols = append(cols, col)
			args = append(args, v)
		}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	stmt := fmt.Sprintf("INSERT INTO data (%s) VALUES (%s)", strings.Join(cols, ", "), placeholders)
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert data row: %w", err)
	}

	if op.Kind == types.KindStructuredName {
		return refreshDisplayName(ctx, tx, contactID, op.Values)
	}
	return nil
}

func updateData(ctx context.Context, tx *sql.Tx, contactID string, op types.Operation) error {
	var sets []string
	var args []any
	for _, col := range dataColumns {
		if v, ok := op.Values[col]; ok {
			sets = append(sets, col+" = ?")
			args = append(args, v)
		}
	}
	if len(sets) == 0 {
		return types.ErrBadOperation
	}
	args = append(args, contactID, string(op.Kind))

	stmt := fmt.Sprintf("UPDATE data SET %s WHERE contact_id = ? AND kind = ?", strings.Join(sets, ", "))
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("update data rows: %w", err)
	}

	if op.Kind == types.KindStructuredName {
		return refreshDisplayName(ctx, tx, contactID, op.Values)
	}
	return nil
}

// refreshDisplayName recomputes raw_contacts.display_name from the name
// columns just written. The composed form is prefix, given, middle,
// family, suffix joined on single spaces with empty parts skipped, which
// is the store-side stand-in for provider-derived display names.
func refreshDisplayName(ctx context.Context, tx *sql.Tx, contactID string, values map[string]any) error {
	parts := make([]string, 0, 5)
	for _, col := range []string{
		types.ColPrefix,
		types.ColGivenName,
		types.ColMiddleName,
		types.ColFamilyName,
		types.ColSuffix,
	} {
		if v, ok := values[col].(string); ok && v != "" {
			parts = append(parts, v)
		}
	}
	_, err := tx.ExecContext(ctx, `
		UPDATE raw_contacts SET display_name = ?, updated_at = ? WHERE contact_id = ?`,
		strings.Join(parts, " "), time.Now().Format(time.RFC3339), contactID)
	if err != nil {
		return fmt.Errorf("refresh display name: %w", err)
	}
	return nil
}
