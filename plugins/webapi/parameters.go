package webapi

import (
	"time"

	flag "github.com/spf13/pflag"
)

const (
	// CfgBindAddress defines the config flag of the web API binding address.
	CfgBindAddress = "webapi.bindAddress"
	// CfgRateLimitInterval defines the interval in which the mutating requests of an account are counted.
	CfgRateLimitInterval = "webapi.rateLimit.interval"
	// CfgRateLimitLimit defines how many mutating requests an account may issue per interval.
	CfgRateLimitLimit = "webapi.rateLimit.limit"
)

func init() {
	flag.String(CfgBindAddress, "127.0.0.1:8080", "the bind address for the web API")
	flag.Duration(CfgRateLimitInterval, time.Minute, "the interval in which the mutating requests of an account are counted")
	flag.Int(CfgRateLimitLimit, 60, "the number of mutating requests an account may issue per interval")
}
