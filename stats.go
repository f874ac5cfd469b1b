package translate

// Report holds the usage statistics of a catalog compared to the keys found in the sources.
type Report struct {
	// Used is the number of found keys.
	Used int `json:"used"`
	// New is the number of found keys missing from the catalog.
	New int `json:"new"`
	// Obsolete is the number of catalog keys that were not found.
	Obsolete int `json:"obsolete"`
	// Empty is the number of found keys without a translation, new keys included.
	Empty int `json:"empty"`

	ObsoletesList []string `json:"obsoletesList"`
}

// Stats compares the catalog with the found keys.
// A nil catalog is treated as an empty catalog.
func Stats(catalog *Catalog, found []string) Report {
	entries := catalog.Flatten()

	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Value
	}

	isFound := make(map[string]bool, len(found))
	for _, key := range found {
		isFound[key] = true
	}

	report := Report{
		Used:          len(found),
		ObsoletesList: make([]string, 0),
	}

	for _, e := range entries {
		if !isFound[e.Key] {
			report.ObsoletesList = append(report.ObsoletesList, e.Key)
		}
	}
	report.Obsolete = len(report.ObsoletesList)

	for _, key := range found {
		value, ok := values[key]
		if !ok {
			report.New++
		}

		if value == "" {
			report.Empty++
		}
	}

	return report
}
