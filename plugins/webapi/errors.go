package webapi

import (
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/assetledger/packages/registry"
)

// ErrRateLimited is returned if an account exceeded the request limit of mutating calls.
var ErrRateLimited = errors.New("request limit exceeded")

// errorMapping maps the errors of the registry to HTTP status codes and metric labels.
var errorMapping = []struct {
	err    error
	status int
	reason string
}{
	{registry.ErrInvalidAccount, http.StatusBadRequest, "invalidAccount"},
	{registry.ErrInvalidAssetID, http.StatusBadRequest, "invalidAssetID"},
	{registry.ErrAssetNotFound, http.StatusNotFound, "assetNotFound"},
	{registry.ErrNotOwner, http.StatusForbidden, "notOwner"},
	{registry.ErrSelfTransfer, http.StatusConflict, "selfTransfer"},
	{registry.ErrCapacityExceeded, http.StatusConflict, "capacityExceeded"},
	{registry.ErrDuplicateIdentity, http.StatusConflict, "duplicateIdentity"},
	{registry.ErrInconsistentState, http.StatusInternalServerError, "inconsistentState"},
	{registry.ErrArithmeticOverflow, http.StatusInternalServerError, "arithmeticOverflow"},
	{ErrRateLimited, http.StatusTooManyRequests, "rateLimited"},
}

// statusOf returns the HTTP status code and the metric label of the given error.
func statusOf(err error) (status int, reason string) {
	for _, mapping := range errorMapping {
		if errors.Is(err, mapping.err) {
			return mapping.status, mapping.reason
		}
	}

	return http.StatusInternalServerError, "internal"
}
