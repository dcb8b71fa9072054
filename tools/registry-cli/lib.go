package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iotaledger/assetledger/packages/registry"
)

// accountFromFlags returns the base58 AccountID given by -account or derived from -key.
func accountFromFlags(command *flag.FlagSet, account, key string) string {
	switch {
	case account != "" && key != "":
		printUsage(command, "only one of -account and -key can be set")
	case account != "":
		accountID, err := registry.AccountIDFromBase58(account)
		if err != nil {
			printUsage(command, err.Error())
		}
		return accountID.Base58()
	case key != "":
		return registry.NewAccountID([]byte(key)).Base58()
	default:
		printUsage(command, "an account must be given with -account or -key")
	}

	return ""
}

func printAsset(id, owner, gender string, price uint64, createdAt int64) {
	fmt.Println()
	fmt.Printf("Asset:      %s\n", id)
	fmt.Printf("Owner:      %s\n", owner)
	fmt.Printf("Gender:     %s\n", gender)
	fmt.Printf("Price:      %d\n", price)
	fmt.Printf("Created at: %s\n", time.Unix(createdAt, 0).Format(time.RFC3339))
}

func printOwnedAssets(account string, assetIDs []string, limit int) {
	fmt.Println()
	fmt.Printf("Account %s holds %d of %d assets:\n", account, len(assetIDs), limit)
	for _, assetID := range assetIDs {
		fmt.Println("  - " + assetID)
	}
}

func printUsage(command *flag.FlagSet, optionalErrorMessage ...string) {
	if len(optionalErrorMessage) >= 1 {
		_, _ = fmt.Fprintf(os.Stderr, "\n")
		_, _ = fmt.Fprintf(os.Stderr, "ERROR:\n  "+optionalErrorMessage[0]+"\n")
	}

	if command == nil {
		fmt.Println()
		fmt.Println("USAGE:")
		fmt.Println("  " + filepath.Base(os.Args[0]) + " [COMMAND]")
		fmt.Println()
		fmt.Println("COMMANDS:")
		fmt.Println("  create-asset")
		fmt.Println("        create a new asset owned by the given account")
		fmt.Println("  transfer")
		fmt.Println("        transfer the ownership of an asset")
		fmt.Println("  asset-info")
		fmt.Println("        returns information about an asset")
		fmt.Println("  owned-assets")
		fmt.Println("        list the assets held by an account")
		fmt.Println("  account")
		fmt.Println("        derive an AccountID from key material")
		fmt.Println("  info")
		fmt.Println("        show the counters of the registry")
		fmt.Println("  interactive")
		fmt.Println("        start an interactive session")
		fmt.Println("  help")
		fmt.Println("        display this help screen")
		fmt.Println()
		fmt.Println("The node is selected with the " + nodeURLEnv + " environment variable (default " + defaultNodeURL + ").")

		if len(optionalErrorMessage) >= 1 {
			os.Exit(1)
		}

		os.Exit(0)
	}

	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  " + filepath.Base(os.Args[0]) + " " + command.Name() + " [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	command.PrintDefaults()

	if len(optionalErrorMessage) >= 1 {
		os.Exit(1)
	}

	os.Exit(0)
}
