package demo

import (
	"sync"

	"github.com/san-kum/stride/internal/config"
)

// Batch runs several traversal configurations over the same profile,
// one goroutine per configuration. Steppers are single-pass, so each
// run builds its own from the config.
type Batch struct {
	configs []*config.Config
}

func NewBatch(configs []*config.Config) *Batch {
	return &Batch{configs: configs}
}

// Run executes all configurations and returns the results in input
// order. A nil result at index i carries a non-nil error at the same
// index; a completed-but-failed traversal has both.
func (b *Batch) Run() ([]*Result, []error) {
	results := make([]*Result, len(b.configs))
	errs := make([]error, len(b.configs))

	var wg sync.WaitGroup
	for i, cfg := range b.configs {
		wg.Add(1)
		go func(idx int, cfg *config.Config) {
			defer wg.Done()

			w, err := BuildStepper(cfg)
			if err != nil {
				errs[idx] = err
				return
			}
			prof, err := ByName(cfg.Demo.Profile, cfg.Stop-cfg.Start, cfg.Demo.Width)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = Run(w, prof, cfg.Demo.ErrorScale)
		}(i, cfg)
	}
	wg.Wait()

	return results, errs
}
