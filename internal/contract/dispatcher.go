package contract

import (
	"wxledger/internal/models"
	"wxledger/internal/providers"
	"wxledger/internal/services"
)

type DispatcherInterface interface {
	Dispatch(call Call, sender models.Identity) Result
	Invoke(method string, args []any, sender models.Identity) Result
}

// Dispatcher routes calls to the ledger services. Each call runs to
// completion inside Ledger.Apply before the next one starts.
type Dispatcher struct {
	ledger  services.LedgerInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewDispatcher(ledger services.LedgerInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) DispatcherInterface {
	return &Dispatcher{
		ledger:  ledger,
		logger:  logger,
		metrics: metrics,
	}
}

// Invoke decodes a by-name call and dispatches it.
func (d *Dispatcher) Invoke(method string, args []any, sender models.Identity) Result {
	m, ok := ParseMethod(method)
	if !ok {
		res := Failure(models.ErrMethodNotFound)
		d.logger.Warnf(providers.TypeLedger, "unknown method %q from %q", method, sender)
		d.metrics.IncCallsTotal("unknown", res.Outcome())
		return res
	}

	call, err := Decode(m, args)
	if err != nil {
		res := Failure(err)
		d.observe(m.String(), sender, res)
		return res
	}
	return d.Dispatch(call, sender)
}

func (d *Dispatcher) Dispatch(call Call, sender models.Identity) Result {
	if call == nil {
		res := Failure(models.ErrMethodNotFound)
		d.observe("nil", sender, res)
		return res
	}

	var res Result
	d.ledger.Apply(func() {
		res = d.execute(call, sender)
	})
	d.observe(call.Method().String(), sender, res)
	return res
}

func (d *Dispatcher) execute(call Call, sender models.Identity) Result {
	switch c := call.(type) {
	case RecordPredictionResult:
		return resultOf(d.ledger.Accuracy().RecordResult(sender, c.IsCorrect, models.UserKey(c.User), models.LocationKey(c.Location)))
	case GetUserAccuracy:
		return Success(d.ledger.Accuracy().GetAccuracy(models.UserKey(c.User)))
	case GetLocationAccuracy:
		return Success(d.ledger.Accuracy().GetAccuracy(models.LocationKey(c.Location)))
	case AuthorizeOracle:
		return resultOf(d.ledger.Access().AuthorizeOracle(sender, c.Oracle))
	case RevokeOracle:
		return resultOf(d.ledger.Access().RevokeOracle(sender, c.Oracle))
	case AddWeatherData:
		return resultOf(d.ledger.Weather().AddWeatherData(sender, c.Location, d.ledger.Height(), c.Record))
	case GetWeatherData:
		rec, ok := d.ledger.Weather().GetWeatherData(c.Location, c.Timestamp)
		if !ok {
			return Result{Success: true}
		}
		return Success(rec)
	case IsAuthorizedOracle:
		return Success(d.ledger.Access().IsAuthorizedOracle(c.Oracle))
	default:
		return Failure(models.ErrMethodNotFound)
	}
}

func (d *Dispatcher) observe(method string, sender models.Identity, res Result) {
	outcome := res.Outcome()
	d.metrics.IncCallsTotal(method, outcome)

	switch {
	case !res.Success:
		d.logger.Warnf(providers.TypeLedger, "%s from %q rejected: %s", method, sender, outcome)
	case methodIsReadOnly(method):
		d.logger.Debugf(providers.TypeLedger, "%s from %q", method, sender)
	default:
		d.logger.Infof(providers.TypeLedger, "%s from %q accepted at height %d", method, sender, d.ledger.Height())
	}
}

func methodIsReadOnly(name string) bool {
	m, ok := ParseMethod(name)
	return ok && m.ReadOnly()
}
