package repository

import (
	"context"
	"sync"

	"gmls/domain"
)

// memoryRemoteStore is an in-process implementation of the remote document
// store contract. The hosted backend is swapped in behind the same
// interface; this one backs local development and tests.
type memoryRemoteStore struct {
	mu      sync.RWMutex
	docs    map[string]map[string]domain.Document
	changes *notifier
}

func NewMemoryRemoteStore() domain.RemoteStore {
	return &memoryRemoteStore{
		docs:    make(map[string]map[string]domain.Document),
		changes: newNotifier(),
	}
}

func (rs *memoryRemoteStore) Get(ctx context.Context, collection, id string) (domain.Document, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	doc, ok := rs.docs[collection][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneDocument(doc), nil
}

func (rs *memoryRemoteStore) GetAll(ctx context.Context, collection string) (map[string]domain.Document, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make(map[string]domain.Document, len(rs.docs[collection]))
	for id, doc := range rs.docs[collection] {
		out[id] = cloneDocument(doc)
	}
	return out, nil
}

func (rs *memoryRemoteStore) Set(ctx context.Context, collection, id string, doc domain.Document) error {
	rs.mu.Lock()
	if rs.docs[collection] == nil {
		rs.docs[collection] = make(map[string]domain.Document)
	}
	rs.docs[collection][id] = cloneDocument(doc)
	rs.mu.Unlock()

	rs.changes.broadcast()
	return nil
}

func (rs *memoryRemoteStore) Update(ctx context.Context, collection, id string, fields domain.Document) error {
	rs.mu.Lock()
	if rs.docs[collection] == nil {
		rs.docs[collection] = make(map[string]domain.Document)
	}
	doc := rs.docs[collection][id]
	if doc == nil {
		doc = domain.Document{}
	}
	for k, v := range fields {
		doc[k] = v
	}
	rs.docs[collection][id] = doc
	rs.mu.Unlock()

	rs.changes.broadcast()
	return nil
}

func (rs *memoryRemoteStore) Listen(ctx context.Context, collection, id string) (<-chan domain.Document, error) {
	out := make(chan domain.Document, 1)
	subID, signal := rs.changes.subscribe()

	go func() {
		defer close(out)
		defer rs.changes.unsubscribe(subID)

		for {
			doc, err := rs.Get(ctx, collection, id)
			if err == nil {
				select {
				case out <- doc:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-signal:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func cloneDocument(doc domain.Document) domain.Document {
	out := make(domain.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
