package util

import (
	"sync"

	"github.com/denisbrodbeck/machineid"
)

var (
	machineID      string
	machineIDMutex sync.Mutex
)

// GetMachineID returns a stable identifier for the current machine.
// Tokens are signed with secret+machine id so that copying a database to
// another host invalidates issued tokens. Empty string when unavailable.
func GetMachineID() string {
	machineIDMutex.Lock()
	defer machineIDMutex.Unlock()

	if machineID != "" {
		return machineID
	}

	id, err := machineid.ID()
	if err == nil && id != "" {
		machineID = id
	}
	return machineID
}
