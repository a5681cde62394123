package properties

import "sync"

// The -D side channel: key=value assignments that bypass property matching
// and land in a process-wide store, the equivalent of system-wide
// properties. Entries survive Reset and re-parsing.
var (
	systemMu         sync.RWMutex
	systemProperties = make(map[string]string)
)

// SetSystemProperty stores an ambient key/value pair
func SetSystemProperty(key, value string) {
	systemMu.Lock()
	defer systemMu.Unlock()
	systemProperties[key] = value
}

// SystemProperty returns an ambient value and whether it was set
func SystemProperty(key string) (string, bool) {
	systemMu.RLock()
	defer systemMu.RUnlock()
	value, ok := systemProperties[key]
	return value, ok
}

// SystemProperties returns a copy of the ambient store
func SystemProperties() map[string]string {
	systemMu.RLock()
	defer systemMu.RUnlock()
	copied := make(map[string]string, len(systemProperties))
	for key, value := range systemProperties {
		copied[key] = value
	}
	return copied
}
