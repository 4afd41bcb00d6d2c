package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/search"
	"github.com/MKhiriev/address-search/internal/store"
	"github.com/MKhiriev/address-search/internal/workers"
	"github.com/MKhiriev/address-search/models"
)

const previousResultsTimeout = 2 * time.Second

// PreviousResultsSetter receives the last persisted result set before the UI
// starts.
type PreviousResultsSetter interface {
	SetPreviousResults(models.LastResults)
}

type App struct {
	coordinator search.SearchCoordinator
	lastResults store.LastResultsRepository
	persister   *workers.LastResultsPersister
	ui          UI

	logger *logger.Logger
}

func NewApp(
	coordinator search.SearchCoordinator,
	lastResults store.LastResultsRepository,
	persister *workers.LastResultsPersister,
	ui UI,
	logger *logger.Logger,
) (*App, error) {
	if coordinator == nil || ui == nil {
		return nil, ErrMissingDependency
	}

	return &App{
		coordinator: coordinator,
		lastResults: lastResults,
		persister:   persister,
		ui:          ui,
		logger:      logger,
	}, nil
}

// Run restores the previous results, starts the persister and blocks in the
// UI. The coordinator is closed and pending results are flushed on return.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.restorePrevious(ctx)

	var bg *workers.Workers
	if a.persister != nil {
		unsubscribe := a.coordinator.Subscribe(a.persistOpenResults)
		defer unsubscribe()

		bg = workers.NewWorkers(a.persister)
		bg.Run(ctx)
	}

	err := a.ui.Run(ctx)

	a.coordinator.Close()
	cancel()
	if bg != nil {
		bg.Wait()
	}

	if err != nil {
		return fmt.Errorf("client ui: %w", err)
	}
	return nil
}

func (a *App) restorePrevious(ctx context.Context) {
	setter, ok := a.ui.(PreviousResultsSetter)
	if !ok || a.lastResults == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, previousResultsTimeout)
	defer cancel()

	previous, err := a.lastResults.LoadLastResults(ctx)
	switch {
	case errors.Is(err, store.ErrNoLastResults):
		return
	case err != nil:
		a.logger.Err(err).Msg("error loading last results")
		return
	}

	a.logger.Debug().Str("term", previous.Term).Int("count", len(previous.Addresses)).Msg("restored last results")
	setter.SetPreviousResults(previous)
}

// persistOpenResults is a coordinator subscriber; Submit never blocks.
func (a *App) persistOpenResults(state models.SearchState) {
	if state.Phase != models.PhaseOpen || len(state.Results) == 0 {
		return
	}

	a.persister.Submit(models.LastResults{
		Term:      state.TermValue(),
		Addresses: state.Results,
		SavedAt:   time.Now(),
	})
}
