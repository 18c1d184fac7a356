// Package services contains the HealthMate application services: the
// identity, reminder and settings stores, the daily summary job and the
// scripted assistant. Each store keeps its in-memory state and the durable
// key-value record consistent on every mutation.
package services

// Durable storage keys. Each key holds one serialized record.
const (
	keyToken     = "token"
	keyUser      = "user"
	keyUsers     = "users"
	keyReminders = "reminders"
	keySettings  = "settings"
)
