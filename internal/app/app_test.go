package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/pointledger/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New(config.Default())
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWaitWithoutErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}

func (s *ApplicationSuite) TestInitFailsOnBadLogLevel() {
	cfg := config.Default()
	cfg.LogLvl = "loud"

	err := New(cfg).Init(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't init logger")
}

func (s *ApplicationSuite) TestInitFailsOnBadDatabase() {
	cfg := config.Default()
	cfg.Database = "://not-a-dsn"

	err := New(cfg).Init(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't build pgx pool")
}

func (s *ApplicationSuite) TestStartSchedulerRejectsBadClock() {
	s.app.cfg.SweepAt = "noon"

	err := s.app.startScheduler(context.Background())

	s.Error(err)
}

func (s *ApplicationSuite) TestCloseWithoutInit() {
	s.NoError(s.app.Close())
}
