package battle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type PlayerLocksTestSuite struct {
	suite.Suite
	locks *playerLocks
}

func TestPlayerLocksTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerLocksTestSuite))
}

func (s *PlayerLocksTestSuite) SetupTest() {
	s.locks = newPlayerLocks()
}

func (s *PlayerLocksTestSuite) TestTryLock() {
	unlock, ok := s.locks.TryLock("ash")
	s.Require().True(ok)

	_, ok = s.locks.TryLock("ash")
	s.False(ok)

	other, ok := s.locks.TryLock("misty")
	s.Require().True(ok)
	other()

	unlock()
	unlock()

	again, ok := s.locks.TryLock("ash")
	s.Require().True(ok)
	again()
	s.Equal(0, s.locks.size())
}

func (s *PlayerLocksTestSuite) TestLockWaits() {
	unlock, ok := s.locks.TryLock("ash")
	s.Require().True(ok)

	acquired := make(chan func())
	go func() {
		next, err := s.locks.Lock(context.Background(), "ash")
		if err == nil {
			acquired <- next
		}
	}()

	select {
	case <-acquired:
		s.Fail("lock acquired while held")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	select {
	case next := <-acquired:
		next()
	case <-time.After(time.Second):
		s.Fail("lock never handed over")
	}
	s.Equal(0, s.locks.size())
}

func (s *PlayerLocksTestSuite) TestLockCancelled() {
	unlock, ok := s.locks.TryLock("ash")
	s.Require().True(ok)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.locks.Lock(ctx, "ash")
	s.ErrorIs(err, context.Canceled)
	s.Equal(1, s.locks.size())
}
