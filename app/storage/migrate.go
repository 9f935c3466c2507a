package storage

import "log"

// legacyKeys maps each canonical slot to the misspelled "mpvi-" slot some
// earlier code wrote to. Login once wrote one spelling and read the other,
// silently losing data; "mvpi-" is canonical from here on.
var legacyKeys = map[string]string{
	KeyUsers:       "mpvi-users",
	KeyInspections: "mpvi-inspections",
	KeyWeightings:  "mpvi-weightings",
	KeyFeedback:    "mpvi-feedback",
	KeyVisits:      "mpvi-visits",
}

// MigrateLegacyKeys moves data from legacy slots into their canonical slots.
// A legacy slot is only promoted when the canonical slot has never been
// written, so a store that already holds canonical data is left alone. Safe
// to run on every startup.
func MigrateLegacyKeys(s Store) error {
	for canonical, legacy := range legacyKeys {
		_, haveCanonical, err := s.Get(canonical)
		if err != nil {
			return err
		}
		value, haveLegacy, err := s.Get(legacy)
		if err != nil {
			return err
		}
		if !haveLegacy {
			continue
		}
		if !haveCanonical {
			if err := s.Set(canonical, value); err != nil {
				return err
			}
			log.Printf("storage: migrated legacy slot %q to %q", legacy, canonical)
		}
		if err := s.Delete(legacy); err != nil {
			return err
		}
	}
	return nil
}
