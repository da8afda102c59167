// Package pipeline turns fetch results into display updates.
//
// A fetch moves the pipeline Idle -> Loading -> Success|Failure -> Idle:
//
//	Start(target)          clear display to "Loading..."       -> Loading
//	Complete(t, rec, nil)  every element exits                 -> Success
//	   ... wait Delay() ...
//	Finish(t)              render record, every element enters
//	Complete(t, nil, err)  "Not found", error logged           -> Failure
//	Settle()                                                   -> Idle
//
// The pipeline knows nothing about the UI toolkit. The caller owns the clock:
// it schedules Finish after Delay, which is unconditional so every record
// change shows the same minimum transition.
//
// Fetches are never blocked or coalesced. With Options.DiscardStale each
// response is applied only when its ticket is the latest issued; without it
// whichever render completes last wins.
package pipeline
