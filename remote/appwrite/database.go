package appwrite

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lifefellowship/fellowship-client/model"
)

var _ model.DocumentStore = (*Database)(nil)

// Database implements model.DocumentStore against the /databases API for a
// single database.
type Database struct {
	client     *Client
	databaseID string
}

// NewDatabase creates a new Database adapter.
func NewDatabase(client *Client, databaseID string) *Database {
	return &Database{
		client:     client,
		databaseID: databaseID,
	}
}

func (d *Database) documentsPath(collectionID string) string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents", d.databaseID, collectionID)
}

// GetDocument fetches a profile document by id. Document fields arrive
// top-level next to the service's $-prefixed metadata, so the record decodes
// directly.
func (d *Database) GetDocument(ctx context.Context, collectionID, documentID string) (model.UserAccount, error) {
	var account model.UserAccount
	path := d.documentsPath(collectionID) + "/" + documentID
	if err := d.client.do(ctx, http.MethodGet, path, nil, &account); err != nil {
		return model.UserAccount{}, fmt.Errorf("failed to get document: %w", err)
	}

	return account, nil
}

// CreateDocument stores a new profile document under the given id.
func (d *Database) CreateDocument(ctx context.Context, collectionID, documentID string, account model.UserAccount) error {
	body := map[string]any{
		"documentId": documentID,
		"data":       account,
	}

	if err := d.client.do(ctx, http.MethodPost, d.documentsPath(collectionID), body, nil); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

// UpdateDocument overwrites the fields of an existing profile document.
func (d *Database) UpdateDocument(ctx context.Context, collectionID, documentID string, account model.UserAccount) error {
	body := map[string]any{
		"data": account,
	}

	path := d.documentsPath(collectionID) + "/" + documentID
	if err := d.client.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	return nil
}

// DeleteDocument removes a profile document.
func (d *Database) DeleteDocument(ctx context.Context, collectionID, documentID string) error {
	path := d.documentsPath(collectionID) + "/" + documentID
	if err := d.client.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}
