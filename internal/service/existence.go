package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-help-crypt/internal/adapter"
	"github.com/MKhiriev/go-help-crypt/internal/logger"
)

// existenceChecker caches the result of a single CodeAt probe. The probe is
// deduplicated: while one caller is on the wire, every other caller gets the
// last known result immediately instead of a second probe or a wait.
type existenceChecker struct {
	ledger adapter.LedgerAdapter
	log    *logger.Logger

	inFlight atomic.Bool

	mu       sync.RWMutex
	addr     common.Address
	known    bool
	deployed bool
	lastErr  error
}

// NewExistenceChecker constructs an [ExistenceChecker] backed by the ledger
// adapter.
func NewExistenceChecker(ledger adapter.LedgerAdapter, log *logger.Logger) ExistenceChecker {
	return &existenceChecker{
		ledger: ledger,
		log:    log,
	}
}

// Check implements [ExistenceChecker]. A probe failure is cached as
// "not deployed" together with the causing error; the state stays latched
// until [existenceChecker.Invalidate] forces a re-probe.
func (c *existenceChecker) Check(ctx context.Context, addr common.Address) (bool, error) {
	c.mu.Lock()
	if c.addr != addr {
		// адрес сменился — старый результат больше не действителен
		c.addr = addr
		c.known = false
		c.deployed = false
		c.lastErr = nil
	}
	if c.known {
		deployed, lastErr := c.deployed, c.lastErr
		c.mu.Unlock()
		return deployed, lastErr
	}
	c.mu.Unlock()

	if !c.inFlight.CompareAndSwap(false, true) {
		// probe уже в полёте — отдаём, что знаем
		c.mu.RLock()
		deployed, lastErr := c.deployed, c.lastErr
		c.mu.RUnlock()
		return deployed, lastErr
	}
	defer c.inFlight.Store(false)

	code, err := c.ledger.CodeAt(ctx, addr)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.log.Err(err).
			Str("func", "existenceChecker.Check").
			Str("address", addr.Hex()).
			Msg("code probe failed")
		c.known = true
		c.deployed = false
		c.lastErr = err
		return false, err
	}

	c.known = true
	c.deployed = len(code) > 0
	c.lastErr = nil

	c.log.Debug().
		Str("func", "existenceChecker.Check").
		Str("address", addr.Hex()).
		Bool("deployed", c.deployed).
		Msg("code probe finished")

	return c.deployed, nil
}

// Invalidate implements [ExistenceChecker].
func (c *existenceChecker) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.known = false
	c.deployed = false
	c.lastErr = nil
}
