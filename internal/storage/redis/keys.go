package redis

import (
	"fmt"

	"github.com/mpfeif/caddiebook/internal/model"
)

// Key prefix for all outing data
const keyPrefix = "caddiebook"

// Key generation functions for each entity type

// profileKey returns the Redis key for a Profile
func profileKey(id model.ProfileID) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, id)
}

// profilesIndexKey returns the Redis key for the SET of all profile ids
func profilesIndexKey() string {
	return fmt.Sprintf("%s:idx:profiles", keyPrefix)
}

// eventKey returns the Redis key for an Event
func eventKey(id model.EventID) string {
	return fmt.Sprintf("%s:event:%s", keyPrefix, id)
}

// settlementKey returns the Redis key for a Settlement
func settlementKey(id model.SettlementID) string {
	return fmt.Sprintf("%s:settlement:%s", keyPrefix, id)
}

// settlementsForEventIndexKey returns the Redis key for the SET of
// settlements derived from an event
func settlementsForEventIndexKey(eventID model.EventID) string {
	return fmt.Sprintf("%s:idx:settlements_for_event:%s", keyPrefix, eventID)
}

// settlementsForProfileIndexKey returns the Redis key for the SET of
// settlements a profile is a party to
func settlementsForProfileIndexKey(profileID model.ProfileID) string {
	return fmt.Sprintf("%s:idx:settlements_for_profile:%s", keyPrefix, profileID)
}

// walletKey returns the Redis key for a profile's wallet ledger LIST
func walletKey(profileID model.ProfileID) string {
	return fmt.Sprintf("%s:wallet:%s", keyPrefix, profileID)
}
