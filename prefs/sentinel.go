package prefs

import "github.com/c64ensemble/c64/curated"

// NoPrefsFile is the curated error pattern returned (wrapped) when a Load()
// is attempted against a preferences file that does not yet exist on disk.
// Callers typically treat this as "use the defaults" rather than a failure.
const NoPrefsFile = "prefs: no prefs file (%v)"

var curatedNoPrefsFile = curated.Errorf(NoPrefsFile, "file does not exist")
