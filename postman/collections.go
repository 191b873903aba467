package postman

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SchemaURL is the collection format every created collection declares.
const SchemaURL = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

type collectionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Schema      string `json:"schema"`
}

type newCollection struct {
	Info collectionInfo `json:"info"`
	Item []any          `json:"item"`
}

// ListCollections returns every collection visible to the API key.
func (c *Client) ListCollections(ctx context.Context) (Payload, error) {
	return c.do(ctx, http.MethodGet, "/collections", nil, "Failed to retrieve collections")
}

// GetCollection returns the full collection document.
func (c *Client) GetCollection(ctx context.Context, collectionID string) (Payload, error) {
	if err := required(collectionID, "Collection ID is required"); err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodGet, "/collections/"+url.PathEscape(collectionID), nil,
		fmt.Sprintf("Failed to retrieve collection with ID %s", collectionID))
}

// CreateCollection creates an empty collection.
func (c *Client) CreateCollection(ctx context.Context, name, description string) (Payload, error) {
	if err := required(name, "Collection name is required"); err != nil {
		return nil, err
	}

	body := map[string]any{
		"collection": newCollection{
			Info: collectionInfo{
				Name:        name,
				Description: description,
				Schema:      SchemaURL,
			},
			Item: []any{},
		},
	}
	return c.do(ctx, http.MethodPost, "/collections", body, "Failed to create collection")
}

// AddRequestToCollection appends a request to the top level of a collection.
//
// The Postman API has no partial update for collection items, so this reads
// the current document, appends locally and writes the whole document back.
// The cycle is not atomic: two concurrent calls against the same collection
// can both read the same state and the later write discards the earlier
// append. A failed read issues no write.
//
// folderPath is accepted but requests are always appended at the top level.
func (c *Client) AddRequestToCollection(ctx context.Context, collectionID string, request RequestSpec, folderPath string) (Payload, error) {
	if err := required(collectionID, "Collection ID is required"); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	entry, err := request.Entry()
	if err != nil {
		return nil, err
	}

	current, err := c.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	doc, err := collectionDocument(current)
	if err != nil {
		return nil, err
	}
	if folderPath != "" {
		c.log.Debug("folder placement is not supported, appending at top level",
			"collection", collectionID, "folder", folderPath)
	}
	if err := appendItem(doc, entry); err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodPut, "/collections/"+url.PathEscape(collectionID),
		map[string]any{"collection": doc}, "Failed to update collection")
}

// collectionDocument extracts the mutable collection object from a
// GetCollection payload.
func collectionDocument(p Payload) (map[string]any, error) {
	doc, ok := p["collection"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to decode response: collection document missing")
	}
	return doc, nil
}

// appendItem adds entry to the end of doc's item list, creating the list if
// the document has none. Every other field of doc is left untouched.
func appendItem(doc map[string]any, entry map[string]any) error {
	raw, present := doc["item"]
	if !present || raw == nil {
		doc["item"] = []any{entry}
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("failed to decode response: collection item is %T, not a list", raw)
	}
	doc["item"] = append(items, entry)
	return nil
}
