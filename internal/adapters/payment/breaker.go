package payment

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

type circuitBreakerState int

const (
	cbOpen circuitBreakerState = iota
	cbClose
	cbHalfOpen
)

// circuitBreaker stops hammering the provider while it is failing or has
// asked us to back off. The request callback returns a delay in seconds
// (from Retry-After) that keeps the breaker open for that long.
type circuitBreaker struct {
	mu          *sync.Mutex
	expireDelay int64
	state       circuitBreakerState
}

func newCircuitBreaker() *circuitBreaker {
	cb := &circuitBreaker{
		mu:          &sync.Mutex{},
		expireDelay: 0,
		state:       cbClose,
	}

	return cb
}

func (cb *circuitBreaker) execute(request func() (int64, error)) error {
	cb.mu.Lock()
	switch cb.state {
	case cbOpen:
		current := time.Now().Unix()
		if current > cb.expireDelay {
			cb.state = cbHalfOpen
		} else {
			cb.mu.Unlock()
			return errors.New("provider circuit open")
		}
	case cbHalfOpen:
		cb.state = cbOpen
	default:
	}
	cb.mu.Unlock()

	delay, err := request()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	timeDelay := time.Duration(delay) * time.Second
	if timeDelay > 0 {
		cb.expireDelay = time.Now().Add(timeDelay).Unix()
	}
	if err != nil {
		cb.state = cbOpen
		time.Sleep(timeDelay)
		return fmt.Errorf("request error: %w", err)
	}

	if timeDelay > 0 {
		cb.state = cbOpen
		time.Sleep(timeDelay)
		return nil
	}

	cb.state = cbClose
	return nil
}
