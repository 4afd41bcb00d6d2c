// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/address-search/internal/adapter"
	"github.com/MKhiriev/address-search/internal/app"
	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/models"
)

// Option customises a coordinator created by [NewCoordinator].
type Option func(*coordinator)

// WithClock replaces the wall clock used for debouncing.
func WithClock(clock Clock) Option {
	return func(c *coordinator) {
		c.clock = clock
	}
}

type coordinator struct {
	lookup   adapter.AddressLookupClient
	notifier Notifier
	clock    Clock

	debounce      time.Duration
	minTermLength int

	// mu guards everything below.
	mu          sync.Mutex
	state       models.SearchState
	timer       Timer
	generation  uint64
	closed      bool
	subscribers map[int]func(models.SearchState)
	nextSubID   int
	seq         uint64

	// publishMu serialises delivery; delivered is the seq of the newest
	// snapshot handed to subscribers.
	publishMu sync.Mutex
	delivered uint64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewCoordinator creates a [SearchCoordinator] in the Idle phase.
//
// A zero cfg.Debounce or cfg.MinTermLength falls back to
// [config.DefaultDebounce] and [config.DefaultMinTermLength]. A nil notifier
// discards notifications.
func NewCoordinator(
	lookup adapter.AddressLookupClient,
	notifier Notifier,
	cfg config.ClientSearch,
	log *logger.Logger,
	opts ...Option,
) (SearchCoordinator, error) {
	if lookup == nil {
		return nil, ErrNilLookupClient
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = config.DefaultDebounce
	}
	minTermLength := cfg.MinTermLength
	if minTermLength <= 0 {
		minTermLength = config.DefaultMinTermLength
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &coordinator{
		lookup:        lookup,
		notifier:      notifier,
		clock:         realClock{},
		debounce:      debounce,
		minTermLength: minTermLength,
		state:         initialState(),
		subscribers:   make(map[int]func(models.SearchState)),
		ctx:           ctx,
		cancel:        cancel,
		logger:        log,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func initialState() models.SearchState {
	return models.SearchState{
		Results: []models.Address{},
		Phase:   models.PhaseIdle,
	}
}

func (c *coordinator) OnInputChange(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.invalidateLocked()
	c.state.Term = &text
	c.state.IsLoading = false

	if utf8.RuneCountInString(text) < c.minTermLength {
		c.state.Results = []models.Address{}
		c.state.Error = nil
		c.state.DropdownOpen = false
		c.state.Phase = models.PhaseTyping
		if text == "" {
			c.state.Phase = models.PhaseIdle
		}
		c.publishLocked()
		return
	}

	gen := c.generation
	c.state.Phase = models.PhaseDebouncing
	c.timer = c.clock.AfterFunc(c.debounce, func() {
		c.fire(gen)
	})
	c.publishLocked()
}

func (c *coordinator) OnItemSelect(address models.Address) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.invalidateLocked()
	label := address.Label()
	c.state.Term = &label
	c.state.DropdownOpen = false
	c.state.IsLoading = false
	c.state.Phase = models.PhaseClosed
	c.publishLocked()
}

func (c *coordinator) OnClear() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.invalidateLocked()
	c.state = initialState()
	c.publishLocked()
}

func (c *coordinator) SetDropdownOpen(open bool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	if open == c.state.DropdownOpen || open && (len(c.state.Results) == 0 || c.state.Error != nil) {
		c.mu.Unlock()
		return
	}

	c.state.DropdownOpen = open
	if open {
		c.state.Phase = models.PhaseOpen
	} else if c.state.Phase == models.PhaseOpen {
		c.state.Phase = models.PhaseClosed
	}
	c.publishLocked()
}

func (c *coordinator) State() models.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Clone()
}

func (c *coordinator) Subscribe(fn func(models.SearchState)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return func() {}
	}

	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}

func (c *coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.invalidateLocked()
	c.subscribers = nil
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

// invalidateLocked stops the pending timer and makes every outstanding timer
// callback and lookup response stale.
func (c *coordinator) invalidateLocked() {
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// publishLocked snapshots the state, releases mu and delivers the snapshot to
// the subscribers. A snapshot overtaken by a newer one is skipped, so
// subscribers never observe state going backwards.
func (c *coordinator) publishLocked() {
	c.seq++
	seq := c.seq
	snapshot := c.state.Clone()
	subscribers := make([]func(models.SearchState), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subscribers = append(subscribers, fn)
	}
	c.mu.Unlock()

	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	if seq <= c.delivered {
		return
	}
	c.delivered = seq

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

// fire runs on the timer goroutine once the debounce window of generation
// gen has elapsed.
func (c *coordinator) fire(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.generation || c.state.Term == nil {
		c.mu.Unlock()
		return
	}

	term := *c.state.Term
	c.timer = nil
	c.state.IsLoading = true
	c.state.Phase = models.PhaseLoading
	c.wg.Add(1)
	c.publishLocked()
	defer c.wg.Done()

	resp, err := c.lookup.Search(c.ctx, term)
	c.complete(gen, term, resp, err)
}

func (c *coordinator) complete(gen uint64, term string, resp models.LookupResponse, err error) {
	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		c.logger.Debug().Str("term", term).Msg("dropping stale address search response")
		return
	}

	c.state.IsLoading = false

	var notify func()
	switch {
	case err != nil:
		msg := failureMessage(err.Error())
		c.failLocked(msg)
		notify = func() { c.notifier.Error(msg) }
		c.logger.Err(err).Str("term", term).Msg("address search failed")
	case !resp.Success:
		msg := failureMessage(resp.Error, resp.Message)
		c.failLocked(msg)
		notify = func() { c.notifier.Error(msg) }
		c.logger.Warn().Str("term", term).Str("reason", msg).Msg("address search rejected")
	case len(resp.Data) == 0:
		c.state.Results = []models.Address{}
		c.state.Error = nil
		c.state.DropdownOpen = false
		c.state.Phase = models.PhaseClosed
	default:
		results := make([]models.Address, len(resp.Data))
		copy(results, resp.Data)
		c.state.Results = results
		c.state.Error = nil
		c.state.DropdownOpen = true
		c.state.Phase = models.PhaseOpen
		msg := fmt.Sprintf(app.MsgFoundAddresses, len(results))
		notify = func() { c.notifier.Success(msg) }
	}

	c.publishLocked()

	if notify != nil {
		notify()
	}
}

func (c *coordinator) failLocked(msg string) {
	c.state.Results = []models.Address{}
	c.state.Error = &msg
	c.state.DropdownOpen = false
	c.state.Phase = models.PhaseFailed
}
