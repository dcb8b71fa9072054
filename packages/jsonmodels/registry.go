package jsonmodels

import (
	"github.com/iotaledger/hive.go/generics/lo"

	"github.com/iotaledger/assetledger/packages/registry"
)

// region Asset ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Asset is the JSON model of a registry.Asset.
type Asset struct {
	ID        string `json:"id"`
	Price     uint64 `json:"price"`
	Gender    string `json:"gender"`
	Owner     string `json:"owner"`
	CreatedAt int64  `json:"createdAt"`
}

// NewAsset returns the JSON model of the given registry.Asset.
func NewAsset(asset *registry.Asset) *Asset {
	return &Asset{
		ID:        asset.ID().Base58(),
		Price:     asset.Price(),
		Gender:    asset.Gender().String(),
		Owner:     asset.Owner().Base58(),
		CreatedAt: asset.CreatedAt().Unix(),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region CreateAsset //////////////////////////////////////////////////////////////////////////////////////////////////

// CreateAssetResponse is the response of a successful asset creation.
type CreateAssetResponse struct {
	AssetID string `json:"assetID"`
	Owner   string `json:"owner"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Transfer /////////////////////////////////////////////////////////////////////////////////////////////////////

// TransferRequest holds the destination of a transfer.
type TransferRequest struct {
	To string `json:"to"`
}

// TransferResponse is the response of a successful transfer.
type TransferResponse struct {
	AssetID string `json:"assetID"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region OwnedAssets //////////////////////////////////////////////////////////////////////////////////////////////////

// OwnedAssetsResponse lists the assets held by an account. The order of AssetIDs is not meaningful.
type OwnedAssetsResponse struct {
	Account  string   `json:"account"`
	AssetIDs []string `json:"assetIDs"`
	Limit    int      `json:"limit"`
}

// NewOwnedAssetsResponse returns the OwnedAssetsResponse of the given account.
func NewOwnedAssetsResponse(account registry.AccountID, assetIDs []registry.AssetID, limit int) *OwnedAssetsResponse {
	return &OwnedAssetsResponse{
		Account:  account.Base58(),
		AssetIDs: lo.Map(assetIDs, registry.AssetID.Base58),
		Limit:    limit,
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Info /////////////////////////////////////////////////////////////////////////////////////////////////////////

// InfoResponse holds the counters and the configuration of the registry.
type InfoResponse struct {
	Nonce            uint64 `json:"nonce"`
	AssetCount       uint64 `json:"assetCount"`
	OwnedAssetsLimit int    `json:"ownedAssetsLimit"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ErrorResponse ////////////////////////////////////////////////////////////////////////////////////////////////

// ErrorResponse is the response that is returned when an error occurred in any of the endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse returns an ErrorResponse from the given error.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Error: err.Error(),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
