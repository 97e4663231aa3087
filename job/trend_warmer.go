package job

import (
	"context"

	"mise/usecase/trending_usecase"
)

// trendWarmerWindows are the window/limit pairs the warmer refreshes.
// They match the defaults the trending endpoint serves most often, so
// the first request after an expiry still hits a warm cache.
var trendWarmerWindows = []struct {
	windowDays int
	limit      int
}{
	{7, 10},
	{30, 10},
}

// TrendWarmerJob returns a scheduler job that recomputes the combined
// trending view for the common windows, repopulating the cache before
// user traffic has to pay for the aggregate queries.
func TrendWarmerJob(trending *trending_usecase.TrendingUsecase) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		for _, w := range trendWarmerWindows {
			if _, err := trending.Execute(ctx, w.windowDays, w.limit); err != nil {
				return err
			}
		}
		return nil
	}
}
