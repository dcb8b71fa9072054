package webapi

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo"

	"github.com/iotaledger/assetledger/packages/jsonmodels"
	"github.com/iotaledger/assetledger/packages/registry"
)

// AccountHeader is the header that carries the base58 encoded AccountID of the (already authenticated) caller.
const AccountHeader = "X-Account-ID"

// region createAssetHandler ///////////////////////////////////////////////////////////////////////////////////////////

// createAssetHandler is the handler for the POST /registry/assets endpoint.
func (s *Server) createAssetHandler(c echo.Context) error {
	const operation = "createAsset"
	s.metrics.RequestReceived(operation)

	caller, err := s.caller(c)
	if err != nil {
		return s.errorResponse(c, operation, err)
	}

	assetID, err := s.registry.CreateAsset(caller)
	if err != nil {
		return s.errorResponse(c, operation, err)
	}

	return c.JSON(http.StatusOK, &jsonmodels.CreateAssetResponse{
		AssetID: assetID.Base58(),
		Owner:   caller.Base58(),
	})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region transferHandler //////////////////////////////////////////////////////////////////////////////////////////////

// transferHandler is the handler for the POST /registry/assets/:assetID/transfer endpoint.
func (s *Server) transferHandler(c echo.Context) error {
	const operation = "transfer"
	s.metrics.RequestReceived(operation)

	caller, err := s.caller(c)
	if err != nil {
		return s.errorResponse(c, operation, err)
	}

	assetID, err := registry.AssetIDFromBase58(c.Param("assetID"))
	if err != nil {
		return s.errorResponse(c, operation, err)
	}

	request := new(jsonmodels.TransferRequest)
	if err = c.Bind(request); err != nil {
		return s.errorResponse(c, operation, errors.Errorf("invalid request body (%v): %w", err, registry.ErrInvalidAccount))
	}
	destination, err := registry.AccountIDFromBase58(request.To)
	if err != nil {
		return s.errorResponse(c, operation, err)
	}

	if err = s.registry.Transfer(caller, destination, assetID); err != nil {
		return s.errorResponse(c, operation, err)
	}

	return c.JSON(http.StatusOK, &jsonmodels.TransferResponse{
		AssetID: assetID.Base58(),
		From:    caller.Base58(),
		To:      destination.Base58(),
	})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region assetHandler /////////////////////////////////////////////////////////////////////////////////////////////////

// assetHandler is the handler for the GET /registry/assets/:assetID endpoint.
func (s *Server) assetHandler(c echo.Context) error {
	const operation = "asset"
	s.metrics.RequestReceived(operation)

	assetID, err := registry.AssetIDFromBase58(c.Param("assetID"))
	if err != nil {
		return s.errorResponse(c, operation, err)
	}

	asset, err := s.registry.Asset(assetID)
	if err != nil {
		return s.errorResponse(c, operation, err)
	}

	return c.JSON(http.StatusOK, jsonmodels.NewAsset(asset))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ownedAssetsHandler ///////////////////////////////////////////////////////////////////////////////////////////

// ownedAssetsHandler is the handler for the GET /registry/accounts/:accountID/assets endpoint.
func (s *Server) ownedAssetsHandler(c echo.Context) error {
	const operation = "ownedAssets"
	s.metrics.RequestReceived(operation)

	account, err := registry.AccountIDFromBase58(c.Param("accountID"))
	if err != nil {
		return s.errorResponse(c, operation, err)
	}

	assetIDs, err := s.registry.OwnedAssets(account)
	if err != nil {
		return s.errorResponse(c, operation, err)
	}

	return c.JSON(http.StatusOK, jsonmodels.NewOwnedAssetsResponse(account, assetIDs, s.registry.OwnedAssetsLimit()))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region infoHandler //////////////////////////////////////////////////////////////////////////////////////////////////

// infoHandler is the handler for the GET /registry/info endpoint.
func (s *Server) infoHandler(c echo.Context) error {
	const operation = "info"
	s.metrics.RequestReceived(operation)

	nonce, err := s.registry.Nonce()
	if err != nil {
		return s.errorResponse(c, operation, err)
	}
	assetCount, err := s.registry.AssetCount()
	if err != nil {
		return s.errorResponse(c, operation, err)
	}

	return c.JSON(http.StatusOK, &jsonmodels.InfoResponse{
		Nonce:            nonce,
		AssetCount:       assetCount,
		OwnedAssetsLimit: s.registry.OwnedAssetsLimit(),
	})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region utility functions ////////////////////////////////////////////////////////////////////////////////////////////

// caller returns the AccountID of the caller of a mutating request and counts the request against its rate limit.
func (s *Server) caller(c echo.Context) (caller registry.AccountID, err error) {
	if caller, err = registry.AccountIDFromBase58(c.Request().Header.Get(AccountHeader)); err != nil {
		return registry.EmptyAccountID, errors.Errorf("missing or malformed %s header: %w", AccountHeader, err)
	}

	if !s.rateLimiter.Allow(caller.Base58()) {
		return registry.EmptyAccountID, errors.Errorf("%s: %w", caller, ErrRateLimited)
	}

	return caller, nil
}

// errorResponse answers the request with the status code that corresponds to the error.
func (s *Server) errorResponse(c echo.Context, operation string, err error) error {
	status, reason := statusOf(err)
	s.metrics.RequestRejected(operation, reason)
	if status == http.StatusInternalServerError {
		s.log.Errorw("request failed", "operation", operation, "err", err)
	}

	return c.JSON(status, jsonmodels.NewErrorResponse(err))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
