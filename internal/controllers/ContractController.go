package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"wxledger/internal/contract"
	"wxledger/internal/models"
	"wxledger/internal/providers"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type callRequest struct {
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

type ContractController struct {
	logger     providers.Logger
	dispatcher contract.DispatcherInterface
	cache      providers.CacheProviderInterface
	sender     providers.SenderProviderInterface
}

func NewContractController(logger providers.Logger, dispatcher contract.DispatcherInterface, cache providers.CacheProviderInterface, sender providers.SenderProviderInterface) *ContractController {
	return &ContractController{
		logger:     logger,
		dispatcher: dispatcher,
		cache:      cache,
		sender:     sender,
	}
}

// statusOf maps an envelope to the HTTP status it is served with.
func statusOf(res contract.Result) int {
	if res.Success {
		return http.StatusOK
	}
	switch {
	case errors.Is(res.Err, models.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(res.Err, models.ErrMethodNotFound):
		return http.StatusNotFound
	case errors.Is(res.Err, contract.ErrInvalidArguments):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeResult(w http.ResponseWriter, res contract.Result) []byte {
	gson, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusOf(res))
	_, _ = w.Write(gson)
	return gson
}

// senderOf resolves the caller. A token that fails to verify downgrades the
// request to the anonymous identity.
func (cc *ContractController) senderOf(r *http.Request) models.Identity {
	sender, err := cc.sender.Resolve(r)
	if err != nil {
		cc.logger.Warnf(providers.GetLogTypeByRequestType(r.Method), "[%s] sender rejected: %s",
			providers.RequestIDFromContext(r.Context()), err)
		return models.Anonymous
	}
	return sender
}

func (cc *ContractController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() contract.Result) {
	if data, ok := cc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	res := compute()
	gson := writeResult(w, res)
	if res.Success && gson != nil {
		cc.cache.Set(cacheKey, gson)
	}
}

// Call runs any contract method by name.
func (cc *ContractController) Call(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload callRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		cc.logger.Debugf(providers.TypePost, "[%s] bad call body: %s", providers.RequestIDFromContext(r.Context()), err)
		writeResult(w, contract.Failure(fmt.Errorf("%w: %w", contract.ErrInvalidArguments, err)))
		return
	}

	res := cc.dispatcher.Invoke(payload.Method, payload.Args, cc.senderOf(r))
	if res.Success {
		if m, ok := contract.ParseMethod(payload.Method); ok && !m.ReadOnly() {
			cc.cache.Clear()
		}
	}
	writeResult(w, res)
}

// query returns the named query parameter, or false when it is absent.
func query(r *http.Request, name string) (string, bool) {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (cc *ContractController) read(w http.ResponseWriter, r *http.Request, method contract.Method, params ...string) {
	args := make([]any, 0, len(params))
	cacheKey := method.String()
	for _, name := range params {
		value, ok := query(r, name)
		if !ok {
			writeResult(w, contract.Failure(fmt.Errorf("%w: missing %s", contract.ErrInvalidArguments, name)))
			return
		}
		args = append(args, value)
		cacheKey += ":" + value
	}

	sender := cc.senderOf(r)
	cc.serveFromCacheOrCompute(w, cacheKey, func() contract.Result {
		return cc.dispatcher.Invoke(method.String(), args, sender)
	})
}

func (cc *ContractController) GetUserAccuracy(w http.ResponseWriter, r *http.Request) {
	cc.read(w, r, contract.MethodGetUserAccuracy, "id")
}

func (cc *ContractController) GetLocationAccuracy(w http.ResponseWriter, r *http.Request) {
	cc.read(w, r, contract.MethodGetLocationAccuracy, "id")
}

func (cc *ContractController) GetWeatherData(w http.ResponseWriter, r *http.Request) {
	cc.read(w, r, contract.MethodGetWeatherData, "location", "timestamp")
}

func (cc *ContractController) IsAuthorizedOracle(w http.ResponseWriter, r *http.Request) {
	cc.read(w, r, contract.MethodIsAuthorizedOracle, "id")
}
