package api

import (
	"context"
	"fmt"
)

// Rewards lists the company's configured rewards.
func (c *Client) Rewards(ctx context.Context) ([]Reward, error) {
	var rewards []Reward
	if err := c.Get(ctx, "/rewards/", &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

// AddReward creates a new reward.
func (c *Client) AddReward(ctx context.Context, create RewardCreate) (*Reward, error) {
	var reward Reward
	if err := c.Post(ctx, "/rewards/", create, &reward); err != nil {
		return nil, err
	}
	return &reward, nil
}

// UpdateReward patches an existing reward.
func (c *Client) UpdateReward(ctx context.Context, id int, update RewardUpdate) (*Reward, error) {
	var reward Reward
	if err := c.Patch(ctx, fmt.Sprintf("/rewards/%d", id), update, &reward); err != nil {
		return nil, err
	}
	return &reward, nil
}

// DeleteReward removes a reward.
func (c *Client) DeleteReward(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/rewards/%d", id))
}
