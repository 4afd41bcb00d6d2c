package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/search"
	"github.com/MKhiriev/address-search/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	coordinator search.SearchCoordinator
	notifier    *Notifier
	cfg         config.ClientSearch
	buildInfo   models.AppBuildInfo
	previous    models.LastResults

	logger *logger.Logger
}

func New(coordinator search.SearchCoordinator, notifier *Notifier, cfg config.ClientSearch, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		coordinator: coordinator,
		notifier:    notifier,
		cfg:         cfg,
		buildInfo:   buildInfo,
		logger:      logger,
	}
}

// SetPreviousResults shows results of an earlier session while the input is
// empty.
func (t *TUI) SetPreviousResults(previous models.LastResults) {
	t.previous = previous
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newSearchModel(t.coordinator, t.notifier, t.cfg, t.buildInfo, t.previous, t.logger)
	defer model.close()

	_, err := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run search ui: %w", err)
	}

	return nil
}
