package main

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/assetledger/client"
	"github.com/iotaledger/assetledger/packages/registry"
)

// region survey ///////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	actionCreateAsset = iota
	actionTransfer
	actionAssetInfo
	actionOwnedAssets
	actionSwitchAccount
	actionRegistryInfo
	actionExit
)

var actions = []string{"Create asset", "Transfer asset", "Asset details", "Owned assets", "Switch account", "Registry info", "Exit"}

var actionQuestion = &survey.Select{
	Message: "Choose an action",
	Options: actions,
	Default: actions[actionOwnedAssets],
}

var accountQuestion = &survey.Input{
	Message: "Key material of your account:",
	Help:    "The AccountID is derived from the given key material.",
}

var assetIDQuestion = func(ownedAssetIDs []string) survey.Prompt {
	if len(ownedAssetIDs) == 0 {
		return &survey.Input{
			Message: "Base58 encoded AssetID:",
		}
	}

	return &survey.Select{
		Message: "Select an asset:",
		Options: ownedAssetIDs,
	}
}

var destinationQuestion = &survey.Input{
	Message: "Base58 encoded AccountID of the new owner:",
}

func validateAccountID(answer interface{}) error {
	str, ok := answer.(string)
	if !ok {
		return errors.New("answer is not a string")
	}
	_, err := registry.AccountIDFromBase58(str)
	return err
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region interactive //////////////////////////////////////////////////////////////////////////////////////////////////

type interactiveMode struct {
	api     *client.RegistryAPI
	account string
}

func runInteractive(api *client.RegistryAPI) {
	m := &interactiveMode{api: api}
	m.switchAccount()

	for {
		var nextAction string
		if err := survey.AskOne(actionQuestion, &nextAction); err != nil {
			fmt.Println(err.Error())
			return
		}

		switch nextAction {
		case actions[actionCreateAsset]:
			m.createAsset()
		case actions[actionTransfer]:
			m.transfer()
		case actions[actionAssetInfo]:
			m.assetInfo()
		case actions[actionOwnedAssets]:
			m.ownedAssets()
		case actions[actionSwitchAccount]:
			m.switchAccount()
		case actions[actionRegistryInfo]:
			execInfoCommand(m.api)
		case actions[actionExit]:
			return
		}
		fmt.Println()
	}
}

func (m *interactiveMode) switchAccount() {
	var key string
	if err := survey.AskOne(accountQuestion, &key, survey.WithValidator(survey.Required)); err != nil {
		fmt.Println(err.Error())
		return
	}

	m.account = registry.NewAccountID([]byte(key)).Base58()
	fmt.Println("Using account " + m.account)
}

func (m *interactiveMode) createAsset() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := m.api.CreateAsset(ctx, m.account)
	if err != nil {
		fmt.Println("Failed to create asset: " + err.Error())
		return
	}
	fmt.Println("Created asset " + res.AssetID)
}

func (m *interactiveMode) transfer() {
	assetID, ok := m.askAssetID(m.ownedAssetIDs())
	if !ok {
		return
	}

	var destination string
	if err := survey.AskOne(destinationQuestion, &destination, survey.WithValidator(validateAccountID)); err != nil {
		fmt.Println(err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if _, err := m.api.Transfer(ctx, m.account, destination, assetID); err != nil {
		fmt.Println("Failed to transfer asset: " + err.Error())
		return
	}
	fmt.Println("Transferred asset " + assetID + " to " + destination)
}

func (m *interactiveMode) assetInfo() {
	assetID, ok := m.askAssetID(m.ownedAssetIDs())
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	asset, err := m.api.Asset(ctx, assetID)
	if err != nil {
		fmt.Println("Failed to load asset: " + err.Error())
		return
	}
	printAsset(asset.ID, asset.Owner, asset.Gender, asset.Price, asset.CreatedAt)
}

func (m *interactiveMode) ownedAssets() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := m.api.OwnedAssets(ctx, m.account)
	if err != nil {
		fmt.Println("Failed to load owned assets: " + err.Error())
		return
	}
	printOwnedAssets(res.Account, res.AssetIDs, res.Limit)
}

func (m *interactiveMode) ownedAssetIDs() []string {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := m.api.OwnedAssets(ctx, m.account)
	if err != nil {
		return nil
	}
	return res.AssetIDs
}

func (m *interactiveMode) askAssetID(ownedAssetIDs []string) (assetID string, ok bool) {
	if err := survey.AskOne(assetIDQuestion(ownedAssetIDs), &assetID, survey.WithValidator(survey.Required)); err != nil {
		fmt.Println(err.Error())
		return "", false
	}
	return assetID, true
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
