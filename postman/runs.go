package postman

import (
	"context"
	"net/http"
)

type runRequest struct {
	Collection  string `json:"collection"`
	Environment string `json:"environment,omitempty"`
}

// RunCollection schedules a collection run, optionally against an environment.
func (c *Client) RunCollection(ctx context.Context, collectionID, environmentID string) (Payload, error) {
	if err := required(collectionID, "Collection ID is required"); err != nil {
		return nil, err
	}

	body := runRequest{
		Collection:  collectionID,
		Environment: environmentID,
	}
	return c.do(ctx, http.MethodPost, "/collections/run", body, "Failed to run collection")
}
