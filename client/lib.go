// Package client implements a very simple wrapper for the web API of the asset registry.
package client

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"

	"github.com/iotaledger/assetledger/packages/jsonmodels"
)

var (
	// ErrBadRequest defines the "bad request" error.
	ErrBadRequest = errors.New("bad request")
	// ErrForbidden defines the "forbidden" error.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound defines the "not found" error.
	ErrNotFound = errors.New("not found")
	// ErrConflict defines the "conflict" error.
	ErrConflict = errors.New("conflict")
	// ErrTooManyRequests defines the "too many requests" error.
	ErrTooManyRequests = errors.New("too many requests")
	// ErrInternalServerError defines the "internal server error" error.
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnknownError defines the "unknown error" error.
	ErrUnknownError = errors.New("unknown error")
)

// accountHeader is the header that carries the AccountID of the caller.
const accountHeader = "X-Account-ID"

// RegistryAPI is an API wrapper over the web API of the asset registry.
type RegistryAPI struct {
	client *resty.Client
}

// NewRegistryAPI returns a new *RegistryAPI with the given baseURL.
func NewRegistryAPI(baseURL string) *RegistryAPI {
	return &RegistryAPI{client: resty.New().SetHostURL(baseURL)}
}

// BaseURL returns the baseURL of the API.
func (api *RegistryAPI) BaseURL() string {
	return api.client.HostURL
}

func (api *RegistryAPI) do(ctx context.Context, method, route, caller string, reqObj, resObj interface{}) error {
	errRes := new(jsonmodels.ErrorResponse)
	req := api.client.R().SetContext(ctx).SetResult(resObj).SetError(errRes)
	if caller != "" {
		req.SetHeader(accountHeader, caller)
	}
	if reqObj != nil {
		req.SetBody(reqObj)
	}

	res, err := req.Execute(method, route)
	if err != nil {
		return errors.Errorf("failed to call %s %s: %w", method, route, err)
	}
	if !res.IsError() {
		return nil
	}

	switch res.StatusCode() {
	case http.StatusBadRequest:
		return errors.Errorf("%w: %s", ErrBadRequest, errRes.Error)
	case http.StatusForbidden:
		return errors.Errorf("%w: %s", ErrForbidden, errRes.Error)
	case http.StatusNotFound:
		return errors.Errorf("%w: %s", ErrNotFound, errRes.Error)
	case http.StatusConflict:
		return errors.Errorf("%w: %s", ErrConflict, errRes.Error)
	case http.StatusTooManyRequests:
		return errors.Errorf("%w: %s", ErrTooManyRequests, errRes.Error)
	case http.StatusInternalServerError:
		return errors.Errorf("%w: %s", ErrInternalServerError, errRes.Error)
	}

	return errors.Errorf("%w: %d %s", ErrUnknownError, res.StatusCode(), errRes.Error)
}
