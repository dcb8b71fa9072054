package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iotaledger/assetledger/client"
	"github.com/iotaledger/assetledger/packages/registry"
)

const requestTimeout = 10 * time.Second

func execCreateAssetCommand(command *flag.FlagSet, api *client.RegistryAPI) {
	command.Usage = func() {
		printUsage(command)
	}

	helpPtr := command.Bool("help", false, "show this help screen")
	accountPtr := command.String("account", "", "base58 encoded AccountID of the creator")
	keyPtr := command.String("key", "", "key material the AccountID of the creator is derived from (instead of -account)")

	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}
	if *helpPtr {
		printUsage(command)
	}

	caller := accountFromFlags(command, *accountPtr, *keyPtr)

	fmt.Println("Creating asset...")
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := api.CreateAsset(ctx, caller)
	if err != nil {
		printUsage(nil, err.Error())
	}
	fmt.Println()
	fmt.Println("Created asset " + res.AssetID + " owned by " + res.Owner)
}

func execTransferCommand(command *flag.FlagSet, api *client.RegistryAPI) {
	command.Usage = func() {
		printUsage(command)
	}

	helpPtr := command.Bool("help", false, "show this help screen")
	accountPtr := command.String("account", "", "base58 encoded AccountID of the current owner")
	keyPtr := command.String("key", "", "key material the AccountID of the current owner is derived from (instead of -account)")
	assetIDPtr := command.String("id", "", "base58 encoded identifier of the asset that should be transferred")
	destinationPtr := command.String("dest-account", "", "base58 encoded AccountID of the new owner")

	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}
	if *helpPtr {
		printUsage(command)
	}
	if *assetIDPtr == "" {
		printUsage(command, "an asset ID must be given for transfer")
	}
	if *destinationPtr == "" {
		printUsage(command, "a destination account must be set for transfer")
	}

	caller := accountFromFlags(command, *accountPtr, *keyPtr)

	fmt.Println("Transferring asset...")
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if _, err := api.Transfer(ctx, caller, *destinationPtr, *assetIDPtr); err != nil {
		printUsage(nil, err.Error())
	}
	fmt.Println()
	fmt.Println("Transferred asset " + *assetIDPtr + " to " + *destinationPtr)
}

func execAssetInfoCommand(command *flag.FlagSet, api *client.RegistryAPI) {
	command.Usage = func() {
		printUsage(command)
	}

	helpPtr := command.Bool("help", false, "show this help screen")
	assetIDPtr := command.String("id", "", "base58 encoded identifier of the asset")

	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}
	if *helpPtr {
		printUsage(command)
	}
	if *assetIDPtr == "" {
		printUsage(command, "an asset ID must be given")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	asset, err := api.Asset(ctx, *assetIDPtr)
	if err != nil {
		printUsage(nil, err.Error())
	}
	printAsset(asset.ID, asset.Owner, asset.Gender, asset.Price, asset.CreatedAt)
}

func execOwnedAssetsCommand(command *flag.FlagSet, api *client.RegistryAPI) {
	command.Usage = func() {
		printUsage(command)
	}

	helpPtr := command.Bool("help", false, "show this help screen")
	accountPtr := command.String("account", "", "base58 encoded AccountID of the owner")
	keyPtr := command.String("key", "", "key material the AccountID of the owner is derived from (instead of -account)")

	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}
	if *helpPtr {
		printUsage(command)
	}

	owner := accountFromFlags(command, *accountPtr, *keyPtr)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := api.OwnedAssets(ctx, owner)
	if err != nil {
		printUsage(nil, err.Error())
	}
	printOwnedAssets(res.Account, res.AssetIDs, res.Limit)
}

func execAccountCommand(command *flag.FlagSet) {
	command.Usage = func() {
		printUsage(command)
	}

	keyPtr := command.String("key", "", "key material the AccountID is derived from")
	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}
	if *keyPtr == "" {
		printUsage(command, "key material must be given")
	}

	fmt.Println()
	fmt.Println("AccountID: " + registry.NewAccountID([]byte(*keyPtr)).Base58())
}

func execInfoCommand(api *client.RegistryAPI) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	info, err := api.Info(ctx)
	if err != nil {
		printUsage(nil, err.Error())
	}

	fmt.Println()
	fmt.Printf("Node:               %s\n", api.BaseURL())
	fmt.Printf("Nonce:              %d\n", info.Nonce)
	fmt.Printf("Assets:             %d\n", info.AssetCount)
	fmt.Printf("Owned assets limit: %d\n", info.OwnedAssetsLimit)
}
