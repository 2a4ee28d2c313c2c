package domain

import "context"

// Document is the loosely-typed field map exchanged with the remote
// document store. Values are whatever the wire gives us: string, float64,
// bool, nil, nested map, list or time.Time. The core never assumes a fixed
// schema here; every access goes through the mapper's cast-with-default
// helpers.
type Document = map[string]interface{}

// Collections the core reads and writes.
const (
	CollectionUsers     = "users"
	CollectionDisasters = "disasters"
)

// RemoteStore is the contract the hosted document database has to satisfy.
// Retry and backoff are the caller's problem, not the core's. GetAll keys
// each document by its store identifier; payloads are not trusted to carry
// one.
type RemoteStore interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	GetAll(ctx context.Context, collection string) (map[string]Document, error)
	Set(ctx context.Context, collection, id string, doc Document) error
	Update(ctx context.Context, collection, id string, fields Document) error
	Listen(ctx context.Context, collection, id string) (<-chan Document, error)
}

// AuthService is the auth collaborator. It issues the user identifier that
// keys both the remote document and the local profile row.
type AuthService interface {
	CurrentUserID(ctx context.Context) (string, error)
	SignIn(ctx context.Context, userID string) error
	SignOut(ctx context.Context) error
}
