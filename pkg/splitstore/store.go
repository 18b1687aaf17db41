// Package splitstore persists computed class splits so a benchmark
// configuration can be pinned and shared.
//
// A [Record] captures everything needed to reproduce a split assignment:
// the per-split sorted leaf ids and the chosen valid/test roots. Two
// backends are provided: [FileStore] for local JSON records and
// [MongoStore] for shared deployments.
package splitstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/taxsplit/pkg/split"
	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("split record not found")

// Record is one persisted split assignment.
type Record struct {
	ID        string              `json:"id" bson:"_id"`
	Dataset   string              `json:"dataset" bson:"dataset"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
	Splits    map[string][]string `json:"splits" bson:"splits"`
	Roots     map[string]string   `json:"roots" bson:"roots"`
}

// NewRecord builds a Record from a split result, assigning a fresh id and
// sorting every leaf list for reproducible output.
func NewRecord(dataset string, result *split.Result) *Record {
	splits := make(map[string][]string, len(result.Classes))
	for name, classes := range result.Classes {
		splits[string(name)] = classes.SortedIDs()
	}
	return &Record{
		ID:        uuid.NewString(),
		Dataset:   dataset,
		CreatedAt: time.Now().UTC(),
		Splits:    splits,
		Roots: map[string]string{
			string(split.Valid): result.Roots.Valid,
			string(split.Test):  result.Roots.Test,
		},
	}
}

// ClassSet returns the record's leaf ids for one split as a set.
func (r *Record) ClassSet(name split.Name) taxonomy.Set {
	return taxonomy.NewSet(r.Splits[string(name)]...)
}

// Store is the interface for split-record storage backends.
type Store interface {
	// Save persists the record, replacing any record with the same id.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a record by id. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]*Record, error)
}
