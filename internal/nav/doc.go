// Package nav holds the navigation state of a viewing session.
//
// A State tracks the id being shown, the highest valid id, and whether the
// startup bound lookup has finished. It turns UI actions into fetch targets:
//
//   - Advance steps to the previous or next id, refusing to leave [1, max]
//   - RandomTarget picks any id in [1, max]
//   - ResolveSearchTerm classifies typed input as an id or a lowercase name
//
// Only Advance and SetCurrentID move the current id. Search and random
// targets are recorded after the record arrives, because a name search only
// reveals the numeric id once the API answers.
//
// Controls is recomputed on every call. Every control stays disabled until
// FinishBoundLookup runs, whatever its outcome. After that previous and next
// also depend on the current id.
package nav
