package database

const (
	// PrefixHealth defines the prefix of the health db.
	PrefixHealth byte = iota
	// PrefixRegistry defines the storage prefix of the asset registry.
	PrefixRegistry
)
