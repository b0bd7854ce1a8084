package api

import "context"

// AddPoints awards loyalty points to the client identified by the scanned
// or typed identifier. Accrual rules live in the backend.
func (c *Client) AddPoints(ctx context.Context, clientIdentifier string) (*PointTransaction, error) {
	payload := map[string]string{"client_identifier": clientIdentifier}

	var tx PointTransaction
	if err := c.Post(ctx, "/points/add", payload, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Transactions lists the company's point transaction history.
func (c *Client) Transactions(ctx context.Context) ([]PointTransaction, error) {
	var txs []PointTransaction
	if err := c.Get(ctx, "/points/transactions/", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
