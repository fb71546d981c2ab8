package geozone

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/kenchrcum/udcore-go/result"
)

// Process-wide dynamic state: zones loaded from a JSON registry, ordered
// by SRID for binary search, and datums harvested from parsed WKT that
// the static table doesn't know. Both are guarded by registryMu.
var (
	registryMu     sync.Mutex
	internalZones  []Zone
	internalDatums []DatumDescriptor
)

// lookupInternalZone finds a dynamically-registered zone by SRID.
func lookupInternalZone(srid int) (Zone, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	i := sort.Search(len(internalZones), func(i int) bool {
		return internalZones[i].SRID >= srid
	})
	if i < len(internalZones) && internalZones[i].SRID == srid {
		return internalZones[i], true
	}
	return Zone{}, false
}

// LoadZonesFromJSON loads a registry of zones from a JSON object whose
// keys are "AUTHORITY:SRID" strings (e.g. "EPSG:32756") and whose values
// are WKT strings. Entries that fail to parse, or whose embedded SRID
// disagrees with the key, are counted and skipped rather than failing
// the batch.
func LoadZonesFromJSON(jsonText string, logger *logrus.Logger) (loaded, failed int, err error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	var entries map[string]any
	if jsonErr := json.Unmarshal([]byte(jsonText), &entries); jsonErr != nil {
		return 0, 0, result.Wrap(result.ParseError, jsonErr)
	}

	// Stable order so repeated loads behave identically.
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parsed := make([]Zone, 0, len(entries))
	for _, key := range keys {
		wkt, ok := entries[key].(string)
		if !ok {
			failed++
			continue
		}

		var zone Zone
		if parseErr := zone.SetFromWKT(wkt); parseErr != nil {
			failed++
			logger.WithError(parseErr).WithFields(logrus.Fields{
				"key": key,
			}).Debug("zone registry entry failed to parse")
			continue
		}

		expectedSRID := 0
		if i := strings.Index(key, ":"); i >= 0 {
			expectedSRID, _ = strconv.Atoi(key[i+1:])
		} else {
			expectedSRID, _ = strconv.Atoi(key)
		}
		if expectedSRID != zone.SRID {
			failed++
			logger.WithFields(logrus.Fields{
				"key":  key,
				"srid": zone.SRID,
			}).Debug("zone registry key disagrees with embedded SRID")
			continue
		}

		parsed = append(parsed, zone)
		loaded++
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	for _, zone := range parsed {
		i := sort.Search(len(internalZones), func(i int) bool {
			return internalZones[i].SRID >= zone.SRID
		})
		if i < len(internalZones) && internalZones[i].SRID == zone.SRID {
			continue // already present, possibly a different authority
		}
		internalZones = append(internalZones, Zone{})
		copy(internalZones[i+1:], internalZones[i:])
		internalZones[i] = zone
	}

	return loaded, failed, nil
}

// UnloadZones clears the dynamic zone and datum registries.
func UnloadZones() {
	registryMu.Lock()
	defer registryMu.Unlock()
	internalZones = nil
	internalDatums = nil
}
