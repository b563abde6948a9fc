// Package store coordinates the version history of one model directory.
//
// # Overview
//
// A Store binds to a root directory and treats its immediate
// subdirectories as the version history: one subdirectory per version,
// named by the version's canonical string (e.g. "1.2.3"). Anything inside
// a version's subdirectory is opaque payload owned by the caller.
//
//	s, err := store.New("workdir/models")
//	if err != nil {
//	    // Handle error
//	}
//
//	history, _ := s.History()          // ascending versions
//	latest, err := s.Latest()          // store.ErrNoVersions when empty
//	_, err = s.AddString("1.0.0")      // creates workdir/models/1.0.0
//	next, err := s.Create(version.KindMinor) // latest -> bump -> add
//
// Directory entries that do not parse as versions are skipped by default,
// since the directory may hold unrelated content. Use WithStrict to fail
// the scan on such entries instead.
//
// # Duplicate checking
//
// Add rejects a version that already exists (ErrVersionExists) but does
// not require new versions to be newer than the latest: history can be
// backfilled. Callers that want a strictly increasing sequence use Create,
// which bumps the latest version, or compose Latest and Bump themselves.
//
// # Concurrency
//
// A Store is safe for concurrent use within one process. No coordination
// exists across processes: between the duplicate check and the directory
// creation another process may create the same version. The loser's Mkdir
// fails, but the store assumes single-writer usage and provides no
// cross-process ordering guarantees.
package store
