package mockespn

import (
	"github.com/stretchr/testify/mock"
	"github.com/trav563/sleeper-analytics-2025/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetTeamsOnBye(week int) (model.ByeWeeks, error) {
	args := c.Called(week)
	return args.Get(0).(model.ByeWeeks), args.Error(1)
}
