package controller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/trav563/sleeper-analytics-2025/model"
)

// getPlayerCatalog returns the cached player catalog, loading it from
// Sleeper on first use. The catalog map is shared and read-only after a
// refresh swaps it in.
func (c *controller) getPlayerCatalog(ctx context.Context) (map[string]model.Player, error) {
	c.mu.RLock()
	players := c.players
	c.mu.RUnlock()

	if players != nil {
		return players, nil
	}

	if err := c.UpdatePlayers(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.players, nil
}

func (c *controller) UpdatePlayers(ctx context.Context) error {
	start := c.clock.Now()
	log.Printf("player catalog refresh starting at %v", start.Format(time.DateTime))

	players, err := c.sleeper.LoadPlayers()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.players = players
	c.mu.Unlock()

	log.Printf("player catalog refresh finished, %d players, took %v", len(players), c.clock.Now().Sub(start))
	return nil
}

func (c *controller) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := c.clock.Ticker(frequency)
	defer ticker.Stop()
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := c.UpdatePlayers(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}
