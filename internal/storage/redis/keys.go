package redis

import "fmt"

// Key prefix for all directory data
const keyPrefix = "edubase"

// rosterKey returns the Redis key for the cached roster
func rosterKey() string {
	return fmt.Sprintf("%s:roster", keyPrefix)
}

// sheetURLKey returns the Redis key for the locally saved sheet URL
func sheetURLKey() string {
	return fmt.Sprintf("%s:sheet_url", keyPrefix)
}

// passphraseKey returns the Redis key for the admin passphrase hash
func passphraseKey() string {
	return fmt.Sprintf("%s:passphrase", keyPrefix)
}
