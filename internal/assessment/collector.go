package assessment

import (
	"context"
	"sync"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/logger"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

// LoadResult holds the candidate lists and the failure of each fetch
type LoadResult struct {
	Airports    []models.Airport
	Flights     []models.UpcomingFlight
	AirportsErr error
	FlightsErr  error
}

// Failed reports whether either fetch failed
func (r LoadResult) Failed() bool {
	return r.AirportsErr != nil || r.FlightsErr != nil
}

// Collector fetches the inputs a calculator view offers for selection
type Collector struct {
	dir api.Directory
}

// NewCollector returns a Collector reading from dir
func NewCollector(dir api.Directory) *Collector {
	return &Collector{dir: dir}
}

// Load fetches all airports and, when the session has a home airport, the
// upcoming flights from it. The fetches run concurrently and fail independently.
func (c *Collector) Load(ctx context.Context, s models.Session) LoadResult {
	var (
		res LoadResult
		wg  sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		res.Airports, res.AirportsErr = c.dir.ListAirports(ctx)
		if res.AirportsErr != nil {
			logger.Warn("Failed to load airports", "error", res.AirportsErr)
		}
	}()

	if s.HomeAirport != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res.Flights, res.FlightsErr = c.dir.ListUpcomingFlights(ctx, s.HomeAirport)
			if res.FlightsErr != nil {
				logger.Warn("Failed to load upcoming flights", "origin", s.HomeAirport, "error", res.FlightsErr)
			}
		}()
	}

	wg.Wait()
	return res
}
