// Package service composes the row store, aggregator, batch builder, and
// photo loader behind the request surface the outer layers call.
package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/rolodex/internal/aggregate"
	"github.com/mesh-intelligence/rolodex/internal/batch"
	"github.com/mesh-intelligence/rolodex/internal/logger"
	"github.com/mesh-intelligence/rolodex/internal/photo"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// photoConcurrency bounds parallel avatar loads within one list request.
const photoConcurrency = 4

// ListOptions control a contact listing request.
type ListOptions struct {
	// Query filters by display-name prefix when non-empty.
	Query string

	// WithPhotos attaches each contact's avatar. Contacts without a
	// stored photo get an empty (non-nil) avatar.
	WithPhotos bool

	// PhotoHighRes selects the full-resolution tier instead of the
	// thumbnail when photos are attached.
	PhotoHighRes bool

	// OrderByGivenName re-sorts the result; otherwise contacts come back
	// in first-seen row order.
	OrderByGivenName bool

	// LocalizedLabels resolves field labels against the locale table.
	LocalizedLabels bool
}

// Service answers contact queries and applies contact mutations. All
// public methods run their store work on the bounded worker pool; a
// caller that abandons its context gets an immediate return while the
// in-flight work finishes and its result is discarded.
type Service struct {
	store  types.Store
	photos *photo.Loader
	pool   *Pool
	log    *logger.Logger
}

// New builds a Service over the given store. Zero pool fields in cfg fall
// back to the defaults.
func New(store types.Store, log *logger.Logger, cfg types.Config) *Service {
	cfg = cfg.WithDefaults()
	return &Service{
		store:  store,
		photos: photo.NewLoader(store, log),
		pool:   NewPool(cfg.Workers, cfg.QueueDepth),
		log:    log,
	}
}

// Close drains the worker pool.
func (s *Service) Close() {
	s.pool.Close()
}

// ListContacts returns all contacts, or those whose display name starts
// with opts.Query when it is non-empty.
func (s *Service) ListContacts(ctx context.Context, opts ListOptions) ([]*types.Contact, error) {
	return dispatch(ctx, s.pool, func() ([]*types.Contact, error) {
		q := allKindsQuery()
		if opts.Query != "" {
			q = types.RowQuery{
				Selection: "display_name LIKE ?",
				Args:      []any{opts.Query + "%"},
			}
		}
		return s.listFromQuery(ctx, q, opts)
	})
}

// ListByPhone returns the contacts owning a phone number containing
// phone. The lookup is two-step: match phone rows first, then fetch every
// row of the matched contacts so the result is fully populated.
func (s *Service) ListByPhone(ctx context.Context, phone string, opts ListOptions) ([]*types.Contact, error) {
	return dispatch(ctx, s.pool, func() ([]*types.Contact, error) {
		if phone == "" {
			return []*types.Contact{}, nil
		}

		matches, err := s.store.Query(ctx, types.RowQuery{
			Selection: "kind = ? AND phone_number LIKE ?",
			Args:      []any{string(types.KindPhone), "%" + phone + "%"},
		})
		if err != nil {
			return nil, fmt.Errorf("phone lookup: %w", err)
		}

		ids := distinctContactIDs(matches)
		if len(ids) == 0 {
			return []*types.Contact{}, nil
		}

		args := make([]any, len(ids))
		for i, id := range ids {
			args[i] = id
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
		return s.listFromQuery(ctx, types.RowQuery{
			Selection: "contact_id IN (" + placeholders + ")",
			Args:      args,
		}, opts)
	})
}

// ListByEmail returns contacts built from the email rows containing
// email. Only the matching email rows feed aggregation, so the resulting
// contacts carry their identity fields plus the matched addresses.
func (s *Service) ListByEmail(ctx context.Context, email string, opts ListOptions) ([]*types.Contact, error) {
	return dispatch(ctx, s.pool, func() ([]*types.Contact, error) {
		if email == "" {
			return []*types.Contact{}, nil
		}
		return s.listFromQuery(ctx, types.RowQuery{
			Selection: "kind = ? AND email_address LIKE ?",
			Args:      []any{string(types.KindEmail), "%" + email + "%"},
		}, opts)
	})
}

// GetByIdentifier returns the contact with the given identifier, or nil
// when no rows match.
func (s *Service) GetByIdentifier(ctx context.Context, identifier string, localized bool) (*types.Contact, error) {
	return dispatch(ctx, s.pool, func() (*types.Contact, error) {
		rows, err := s.store.Query(ctx, types.RowQuery{
			Selection: "contact_id = ?",
			Args:      []any{identifier},
		})
		if err != nil {
			return nil, fmt.Errorf("lookup %q: %w", identifier, err)
		}
		contacts := aggregate.Contacts(rows, localized)
		if len(contacts) == 0 {
			return nil, nil
		}
		return contacts[0], nil
	})
}

// GetPhoto returns the contact's photo as PNG bytes, nil when the store
// has none. Decode failures surface as ErrDecodeFailure.
func (s *Service) GetPhoto(ctx context.Context, c *types.Contact, highRes bool) ([]byte, error) {
	return dispatch(ctx, s.pool, func() ([]byte, error) {
		return s.photos.Load(ctx, c.Identifier, highRes)
	})
}

// AddContact persists a new contact as one atomic batch. The store
// assigns the identifier; the input is not mutated.
func (s *Service) AddContact(ctx context.Context, c *types.Contact) error {
	_, err := dispatch(ctx, s.pool, func() (struct{}, error) {
		if err := s.store.ApplyBatch(ctx, batch.BuildAdd(c)); err != nil {
			s.log.Error("add contact failed", "error", err)
			return struct{}{}, fmt.Errorf("%w: %v", types.ErrStoreFailure, err)
		}
		return struct{}{}, nil
	})
	return err
}

// UpdateContact replaces the stored data of an existing contact. Returns
// ErrInvalidIdentifier when c has none.
func (s *Service) UpdateContact(ctx context.Context, c *types.Contact) error {
	_, err := dispatch(ctx, s.pool, func() (struct{}, error) {
		ops, err := batch.BuildUpdate(c)
		if err != nil {
			return struct{}{}, err
		}
		if err := s.store.ApplyBatch(ctx, ops); err != nil {
			s.log.Error("update contact failed", "identifier", c.Identifier, "error", err)
			return struct{}{}, fmt.Errorf("%w: %v", types.ErrStoreFailure, err)
		}
		return struct{}{}, nil
	})
	return err
}

// DeleteContact removes a contact and, through the store's cascade, its
// data rows. Returns ErrInvalidIdentifier when c has none.
func (s *Service) DeleteContact(ctx context.Context, c *types.Contact) error {
	_, err := dispatch(ctx, s.pool, func() (struct{}, error) {
		ops, err := batch.BuildDelete(c)
		if err != nil {
			return struct{}{}, err
		}
		if err := s.store.ApplyBatch(ctx, ops); err != nil {
			s.log.Error("delete contact failed", "identifier", c.Identifier, "error", err)
			return struct{}{}, fmt.Errorf("%w: %v", types.ErrStoreFailure, err)
		}
		return struct{}{}, nil
	})
	return err
}

// listFromQuery runs the query, aggregates, and applies the photo and
// ordering options. Photos are attached before sorting, matching the
// original request pipeline.
func (s *Service) listFromQuery(ctx context.Context, q types.RowQuery, opts ListOptions) ([]*types.Contact, error) {
	rows, err := s.store.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	contacts := aggregate.Contacts(rows, opts.LocalizedLabels)

	if opts.WithPhotos {
		s.attachPhotos(ctx, contacts, opts.PhotoHighRes)
	}
	if opts.OrderByGivenName {
		aggregate.OrderByGivenName(contacts)
	}
	return contacts, nil
}

// attachPhotos loads avatars for all contacts with bounded concurrency.
// A contact with no photo, or whose photo fails to decode, gets an empty
// non-nil avatar; a listing never fails over photos.
func (s *Service) attachPhotos(ctx context.Context, contacts []*types.Contact, highRes bool) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(photoConcurrency)
	for _, c := range contacts {
		c := c
		g.Go(func() error {
			avatar, err := s.photos.Load(gctx, c.Identifier, highRes)
			if err != nil || avatar == nil {
				avatar = []byte{}
			}
			c.Avatar = avatar
			return nil
		})
	}
	_ = g.Wait()
}

// allKindsQuery selects every row of the seven aggregation kinds.
func allKindsQuery() types.RowQuery {
	args := make([]any, len(types.AggregateKinds))
	for i, kind := range types.AggregateKinds {
		args[i] = string(kind)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	return types.RowQuery{
		Selection: "kind IN (" + placeholders + ")",
		Args:      args,
	}
}

// distinctContactIDs returns the contact ids of rows, deduplicated,
// preserving first-seen order.
func distinctContactIDs(rows []types.Row) []string {
	seen := make(map[string]bool, len(rows))
	var ids []string
	for _, r := range rows {
		if r.ContactID == "" || seen[r.ContactID] {
			continue
		}
		seen[r.ContactID] = true
		ids = append(ids, r.ContactID)
	}
	return ids
}
