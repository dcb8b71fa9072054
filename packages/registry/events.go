package registry

import (
	"github.com/iotaledger/hive.go/generics/event"
)

// region Events ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Events is a container that acts as a dictionary for the existing events of a Registry. They are only triggered after
// the corresponding call was committed, in commit order. Closures registered with Hook run before the call returns and
// may read the Registry, but must not call CreateAsset or Transfer (the next commit waits for them to finish).
type Events struct {
	// AssetCreated is an event that gets triggered whenever a new Asset was created.
	AssetCreated *event.Event[*AssetCreatedEvent]

	// AssetTransferred is an event that gets triggered whenever an Asset changed its owner.
	AssetTransferred *event.Event[*AssetTransferredEvent]
}

// newEvents returns a new Events object.
func newEvents() (new *Events) {
	return &Events{
		AssetCreated:     event.New[*AssetCreatedEvent](),
		AssetTransferred: event.New[*AssetTransferredEvent](),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AssetCreatedEvent ////////////////////////////////////////////////////////////////////////////////////////////

// AssetCreatedEvent is a container that acts as a dictionary for the AssetCreated event related parameters.
type AssetCreatedEvent struct {
	// AssetID contains the identity of the created Asset.
	AssetID AssetID

	// Owner contains the account that created (and holds) the Asset.
	Owner AccountID
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AssetTransferredEvent ////////////////////////////////////////////////////////////////////////////////////////

// AssetTransferredEvent is a container that acts as a dictionary for the AssetTransferred event related parameters.
type AssetTransferredEvent struct {
	// From contains the previous owner of the Asset.
	From AccountID

	// To contains the new owner of the Asset.
	To AccountID

	// AssetID contains the identity of the transferred Asset.
	AssetID AssetID
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
