package entities

// DiscoveryEntry records how often and how impressively a creature has
// been caught in one zone. Counts strictly increase; maxima never
// decrease.
type DiscoveryEntry struct {
	Count     int     `json:"count"`
	MaxWeight float64 `json:"maxWeight"`
	MaxValue  float64 `json:"maxValue"`
}

// Discovery is the full discovery log, keyed by zone then creature name
type Discovery map[ZoneID]map[string]DiscoveryEntry

// Record notes one catch, creating the entry on first discovery and
// raising the running maxima when exceeded
func (d Discovery) Record(zone ZoneID, name string, weight, value float64) {
	zoneLog, ok := d[zone]
	if !ok {
		zoneLog = make(map[string]DiscoveryEntry)
		d[zone] = zoneLog
	}

	entry := zoneLog[name]
	entry.Count++
	if weight > entry.MaxWeight {
		entry.MaxWeight = weight
	}
	if value > entry.MaxValue {
		entry.MaxValue = value
	}
	zoneLog[name] = entry
}

// Entry returns the log entry for a creature in a zone, if discovered
func (d Discovery) Entry(zone ZoneID, name string) (DiscoveryEntry, bool) {
	zoneLog, ok := d[zone]
	if !ok {
		return DiscoveryEntry{}, false
	}
	entry, ok := zoneLog[name]
	return entry, ok
}
