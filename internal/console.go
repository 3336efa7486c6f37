package internal

import (
	"fmt"
	"wxledger/internal/contract"
	"wxledger/internal/models"
	"wxledger/internal/persistence/interfaces"
	"wxledger/internal/providers"
)

// Console runs single contract calls against the persisted ledger without
// starting the HTTP server.
type Console struct {
	dispatcher contract.DispatcherInterface
	scheduler  interfaces.SchedulerInterface
	logger     providers.Logger
}

func NewConsole(dispatcher contract.DispatcherInterface, scheduler interfaces.SchedulerInterface, logger providers.Logger) (*Console, error) {
	if err := scheduler.Restore(); err != nil {
		return nil, fmt.Errorf("restore ledger: %w", err)
	}
	return &Console{
		dispatcher: dispatcher,
		scheduler:  scheduler,
		logger:     logger,
	}, nil
}

// Invoke dispatches one call. Successful mutations are written back to the
// snapshot before returning.
func (c *Console) Invoke(method string, args []string, sender models.Identity) (contract.Result, error) {
	callArgs := make([]any, len(args))
	for i, a := range args {
		callArgs[i] = a
	}

	res := c.dispatcher.Invoke(method, callArgs, sender)
	if !res.Success {
		return res, nil
	}
	if m, ok := contract.ParseMethod(method); ok && !m.ReadOnly() {
		if err := c.scheduler.Persist(); err != nil {
			return res, fmt.Errorf("persist ledger: %w", err)
		}
	}
	return res, nil
}

func (c *Console) Close() {
	c.scheduler.Close()
	c.logger.Close()
}
