package client

import (
	"context"
	"net/http"

	"github.com/iotaledger/assetledger/packages/jsonmodels"
)

const (
	routeAssets   = "/registry/assets/"
	routeAccounts = "/registry/accounts/"
	routeInfo     = "/registry/info"
)

// CreateAsset creates a new asset owned by the caller (base58 AccountID).
func (api *RegistryAPI) CreateAsset(ctx context.Context, caller string) (*jsonmodels.CreateAssetResponse, error) {
	res := &jsonmodels.CreateAssetResponse{}
	if err := api.do(ctx, http.MethodPost, "/registry/assets", caller, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Transfer hands the asset over from the caller to the destination account.
func (api *RegistryAPI) Transfer(ctx context.Context, caller, destination, assetID string) (*jsonmodels.TransferResponse, error) {
	res := &jsonmodels.TransferResponse{}
	if err := api.do(ctx, http.MethodPost, routeAssets+assetID+"/transfer", caller, &jsonmodels.TransferRequest{To: destination}, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Asset gets the asset with the given base58 AssetID.
func (api *RegistryAPI) Asset(ctx context.Context, assetID string) (*jsonmodels.Asset, error) {
	res := &jsonmodels.Asset{}
	if err := api.do(ctx, http.MethodGet, routeAssets+assetID, "", nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// OwnedAssets gets the assets held by the given base58 AccountID.
func (api *RegistryAPI) OwnedAssets(ctx context.Context, account string) (*jsonmodels.OwnedAssetsResponse, error) {
	res := &jsonmodels.OwnedAssetsResponse{}
	if err := api.do(ctx, http.MethodGet, routeAccounts+account+"/assets", "", nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Info gets the counters and the configuration of the registry.
func (api *RegistryAPI) Info(ctx context.Context) (*jsonmodels.InfoResponse, error) {
	res := &jsonmodels.InfoResponse{}
	if err := api.do(ctx, http.MethodGet, routeInfo, "", nil, res); err != nil {
		return nil, err
	}
	return res, nil
}
