package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/mr-tron/base58"
	flag "github.com/spf13/pflag"
)

// randomnessSeedKey is the config key the node reads the seed from.
const randomnessSeedKey = "registry.randomnessSeed"

func main() {
	outputFile := flag.StringP("output", "o", "random-seed.txt", "file the generated seed is written to")
	length := flag.IntP("length", "l", 32, "number of random bytes")
	flag.Parse()

	if *length <= 0 {
		fmt.Println("length must be positive")
		os.Exit(1)
	}

	b := make([]byte, *length)
	if _, err := rand.Read(b); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// If the file doesn't exist, create it, or truncate the file
	f, err := os.Create(*outputFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer f.Close()

	if _, err = f.WriteString(randomnessSeedKey + "=" + base58.Encode(b) + "\n"); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("New randomness seed generated (base58 encoded) and written in %s\n", *outputFile)
}
