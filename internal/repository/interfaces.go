package repository

import "context"

// Record is a single row in the hosted record store: the opaque
// store-assigned id, the column values keyed by column name, and the
// creation timestamp exactly as the store reports it.
type Record struct {
	ID          string         `json:"id"`
	Fields      map[string]any `json:"fields"`
	CreatedTime string         `json:"createdTime"`
}

type Sort struct {
	Field     string
	Direction string // "asc" or "desc"
}

type ListOptions struct {
	Fields     []string
	Sort       []Sort
	View       string
	MaxRecords int
}

// RecordStore is the contract against the hosted tabular store.
// Implementations translate store-level failures into ErrNotFound or
// ErrUpstream so handlers can map them onto HTTP statuses.
type RecordStore interface {
	List(ctx context.Context, table string, opts ListOptions) ([]Record, error)
	Get(ctx context.Context, table, id string) (Record, error)
	Create(ctx context.Context, table string, fields map[string]any) (Record, error)
	Update(ctx context.Context, table, id string, fields map[string]any) (Record, error)
	Delete(ctx context.Context, table, id string) error
}
