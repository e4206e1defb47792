package api_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"shop-backend/internal/repository"
)

// fakeStore is an in-memory RecordStore substituted for the hosted
// store in handler tests.
type fakeStore struct {
	mu     sync.Mutex
	tables map[string][]repository.Record
	err    error // when set, every call fails with it
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: map[string][]repository.Record{}}
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func (s *fakeStore) seed(table string, fields map[string]any) repository.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := repository.Record{
		ID:          "rec" + uuid.NewString()[:8],
		Fields:      cloneFields(fields),
		CreatedTime: "2026-08-31T00:00:00.000Z",
	}
	s.tables[table] = append(s.tables[table], rec)
	return rec
}

func (s *fakeStore) record(table, id string) (repository.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.tables[table] {
		if rec.ID == id {
			return repository.Record{ID: rec.ID, Fields: cloneFields(rec.Fields), CreatedTime: rec.CreatedTime}, true
		}
	}
	return repository.Record{}, false
}

func (s *fakeStore) List(_ context.Context, table string, opts repository.ListOptions) ([]repository.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	records := make([]repository.Record, 0, len(s.tables[table]))
	for _, rec := range s.tables[table] {
		out := repository.Record{ID: rec.ID, CreatedTime: rec.CreatedTime}
		if len(opts.Fields) > 0 {
			out.Fields = make(map[string]any, len(opts.Fields))
			for _, f := range opts.Fields {
				if v, ok := rec.Fields[f]; ok {
					out.Fields[f] = v
				}
			}
		} else {
			out.Fields = cloneFields(rec.Fields)
		}
		records = append(records, out)
	}

	if len(opts.Sort) > 0 {
		f := opts.Sort[0]
		sort.SliceStable(records, func(i, j int) bool {
			a, _ := records[i].Fields[f.Field].(string)
			b, _ := records[j].Fields[f.Field].(string)
			if f.Direction == "desc" {
				return a > b
			}
			return a < b
		})
	}

	if opts.MaxRecords > 0 && len(records) > opts.MaxRecords {
		records = records[:opts.MaxRecords]
	}
	return records, nil
}

func (s *fakeStore) Get(_ context.Context, table, id string) (repository.Record, error) {
	if s.err != nil {
		return repository.Record{}, s.err
	}

	rec, ok := s.record(table, id)
	if !ok {
		return repository.Record{}, fmt.Errorf("get %s/%s: %w", table, id, repository.ErrNotFound)
	}
	return rec, nil
}

func (s *fakeStore) Create(_ context.Context, table string, fields map[string]any) (repository.Record, error) {
	if s.err != nil {
		return repository.Record{}, s.err
	}
	return s.seed(table, fields), nil
}

func (s *fakeStore) Update(_ context.Context, table, id string, fields map[string]any) (repository.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return repository.Record{}, s.err
	}

	for i, rec := range s.tables[table] {
		if rec.ID != id {
			continue
		}
		for k, v := range fields {
			s.tables[table][i].Fields[k] = v
		}
		updated := s.tables[table][i]
		return repository.Record{ID: updated.ID, Fields: cloneFields(updated.Fields), CreatedTime: updated.CreatedTime}, nil
	}
	return repository.Record{}, fmt.Errorf("update %s/%s: %w", table, id, repository.ErrNotFound)
}

func (s *fakeStore) Delete(_ context.Context, table, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	for i, rec := range s.tables[table] {
		if rec.ID == id {
			s.tables[table] = append(s.tables[table][:i], s.tables[table][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %s/%s: %w", table, id, repository.ErrNotFound)
}
