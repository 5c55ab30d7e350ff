package services

import (
	"context"
	"encoding/csv"
	"io"
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/profile"
	"github.com/lumenhr/orgadmin/pkg/composables"
	"github.com/lumenhr/orgadmin/pkg/eventbus"
)

// ProfileService provides operations for managing staff profiles.
type ProfileService struct {
	repo      profile.Repository
	publisher eventbus.EventBus
}

func NewProfileService(repo profile.Repository, publisher eventbus.EventBus) *ProfileService {
	return &ProfileService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *ProfileService) GetPaginated(ctx context.Context, params *profile.FindParams) ([]profile.Profile, int64, error) {
	return s.repo.GetPaginated(ctx, params)
}

// GetAll returns every profile, excluding inactive ones unless asked for.
func (s *ProfileService) GetAll(ctx context.Context, includeInactive bool) ([]profile.Profile, error) {
	exclude := profile.StatusInactive
	if includeInactive {
		exclude = ""
	}
	return s.repo.GetAll(ctx, exclude)
}

func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

// Search ranks active profiles against the query by fuzzy match on the full
// name. Results come back best match first, capped at limit.
func (s *ProfileService) Search(ctx context.Context, query string, limit int) ([]profile.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []profile.Profile{}, nil
	}

	all, err := s.repo.GetAll(ctx, profile.StatusInactive)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.FullName()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	if limit <= 0 || limit > len(ranks) {
		limit = len(ranks)
	}
	out := make([]profile.Profile, 0, limit)
	for _, r := range ranks[:limit] {
		out = append(out, all[r.OriginalIndex])
	}
	return out, nil
}

func (s *ProfileService) Create(ctx context.Context, dto *profile.CreateDTO) (profile.Profile, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (profile.Profile, error) {
		return s.repo.Create(txCtx, dto.ToEntity())
	})
	if err != nil {
		return profile.Profile{}, err
	}

	s.publisher.Publish(profile.CreatedEvent{Result: created})
	return created, nil
}

func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, dto *profile.UpdateDTO) (profile.Profile, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (profile.Profile, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return profile.Profile{}, err
		}
		return s.repo.Update(txCtx, dto.Apply(existing))
	})
	if err != nil {
		return profile.Profile{}, err
	}

	s.publisher.Publish(profile.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *ProfileService) Delete(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (profile.Profile, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return profile.Profile{}, err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return profile.Profile{}, err
		}
		return existing, nil
	})
	if err != nil {
		return profile.Profile{}, err
	}

	s.publisher.Publish(profile.DeletedEvent{Result: deleted})
	return deleted, nil
}

// ImportCSV bulk-creates profiles from a CSV stream with a header row. The
// columns full_name (required) and location (optional) are matched by name;
// the import runs in one transaction and fails as a whole on any bad row.
func (s *ProfileService) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, errors.Wrap(err, "read csv header")
	}

	nameCol, locationCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "full_name", "name":
			nameCol = i
		case "location":
			locationCol = i
		}
	}
	if nameCol == -1 {
		return 0, errors.New("csv header is missing the full_name column")
	}

	var created []profile.Profile
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		line := 1
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return errors.Wrapf(err, "read csv line %d", line)
			}
			line++

			dto := &profile.CreateDTO{FullName: record[nameCol]}
			if locationCol != -1 && locationCol < len(record) {
				location := record[locationCol]
				dto.Location = &location
			}
			if fields, ok := dto.Ok(); !ok {
				return errors.Errorf("csv line %d: invalid row: %v", line, fields)
			}

			p, err := s.repo.Create(txCtx, dto.ToEntity())
			if err != nil {
				return errors.Wrapf(err, "csv line %d", line)
			}
			created = append(created, p)
		}
	})
	if err != nil {
		return 0, err
	}

	for _, p := range created {
		s.publisher.Publish(profile.CreatedEvent{Result: p})
	}
	return len(created), nil
}
