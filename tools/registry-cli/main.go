package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iotaledger/assetledger/client"
)

const (
	defaultNodeURL = "http://127.0.0.1:8080"
	nodeURLEnv     = "REGISTRY_NODE_URL"
)

func main() {
	// print banner
	fmt.Println("Asset Registry CLI 0.1")

	flag.Usage = func() {
		printUsage(nil)
	}

	// check if parameter counts is large enough
	if len(os.Args) < 2 {
		printUsage(nil)
	}

	api := client.NewRegistryAPI(nodeURL())

	// define sub commands
	createAssetCommand := flag.NewFlagSet("create-asset", flag.ExitOnError)
	transferCommand := flag.NewFlagSet("transfer", flag.ExitOnError)
	assetInfoCommand := flag.NewFlagSet("asset-info", flag.ExitOnError)
	ownedAssetsCommand := flag.NewFlagSet("owned-assets", flag.ExitOnError)
	accountCommand := flag.NewFlagSet("account", flag.ExitOnError)

	// switch logic according to provided sub command
	switch os.Args[1] {
	case "create-asset":
		execCreateAssetCommand(createAssetCommand, api)
	case "transfer":
		execTransferCommand(transferCommand, api)
	case "asset-info":
		execAssetInfoCommand(assetInfoCommand, api)
	case "owned-assets":
		execOwnedAssetsCommand(ownedAssetsCommand, api)
	case "account":
		execAccountCommand(accountCommand)
	case "info":
		execInfoCommand(api)
	case "interactive":
		runInteractive(api)
	case "help":
		printUsage(nil)
	default:
		printUsage(nil, "unknown [COMMAND]: "+os.Args[1])
	}
}

func nodeURL() string {
	if url := os.Getenv(nodeURLEnv); url != "" {
		return url
	}
	return defaultNodeURL
}
