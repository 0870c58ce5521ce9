package corpus

// AuditKeys computes the global key-consistency report for a loaded corpus.
//
// The first pass unions the keys of every record across every file and
// language. The second pass collects each union key that is absent from at
// least one record. The report is a global summary: no per-record or
// per-file attribution is kept.
func AuditKeys(c Corpus) (allKeys, missingKeys map[string]struct{}) {
	allKeys = make(map[string]struct{})
	for _, files := range c {
		for _, records := range files {
			for _, rec := range records {
				for k := range rec {
					allKeys[k] = struct{}{}
				}
			}
		}
	}

	missingKeys = make(map[string]struct{})
	for _, files := range c {
		for _, records := range files {
			for _, rec := range records {
				for k := range allKeys {
					if _, ok := rec[k]; !ok {
						missingKeys[k] = struct{}{}
					}
				}
			}
		}
	}

	return allKeys, missingKeys
}
