// Package reminder runs the periodic sweep that fires due task reminders.
package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	rcron "github.com/robfig/cron/v3"
)

const defaultInterval = 30 * time.Second

// Service owns the sweep schedule. OnSweep is invoked with the sweep time;
// the gateway walks active sessions and pushes reminders for tasks that
// came due.
type Service struct {
	interval time.Duration
	cron     *rcron.Cron
	OnSweep  func(now time.Time)
}

func NewService(interval string) (*Service, error) {
	d := defaultInterval
	if interval != "" {
		parsed, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("parse sweep interval %q: %w", interval, err)
		}
		if parsed > 0 {
			d = parsed
		}
	}
	return &Service{interval: d}, nil
}

func (s *Service) Start(ctx context.Context) error {
	s.cron = rcron.New()

	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		if s.OnSweep == nil {
			return
		}
		s.OnSweep(time.Now())
	})
	if err != nil {
		return fmt.Errorf("register sweep: %w", err)
	}

	s.cron.Start()
	log.Printf("[reminder] sweeping every %s", s.interval)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		log.Printf("[reminder] stop timeout waiting for running sweep")
	}
	log.Printf("[reminder] stopped")
}
