// Package explore drives a rover across unknown terrain and builds a
// terrain.GridMap of what it senses.
//
// Two schedulers share the same breadth-first frontier discipline:
//
//   - Explorer assumes unlimited energy. It dequeues a discovered cell,
//     walks there over known ground (pathplan.FindPath) and probes each
//     unvisited neighbour with a probe-and-return transaction.
//
//   - BudgetExplorer bounds every excursion by the rover's remaining energy.
//     Frontier entries carry their full path from home. An entry is only
//     committed when the round trip fits (2·d <= battery); at the target at
//     most min(4, floor(battery/2)) neighbours are probed, then the rover
//     retraces the path home and recharges if it is below maximum.
//
// The rover is consumed through the Rover interface and its battery is read
// directly at every decision point; nothing is cached. Each Run builds a
// fresh run state, so an Explorer can be reused and no map, frontier or
// battery reading survives between runs.
//
// Failure handling
//
//   - Obstruction ("Obstructed Space") is recorded as 'X' and never retried.
//   - Any other failed probe leaves the neighbour unrecorded; it is counted
//     in Stats.Unresolved and never retried.
//   - Budget entries rejected by the round-trip gate are dropped for good,
//     even if a later recharge would have allowed them.
//   - A failed walk or a terrain mismatch at the target abandons the branch;
//     the rover retraces only the moves that succeeded.
//   - A rover that cannot make it home is stranded; the run recovers by
//     recharging, which docks the rover at its base.
//
// Run only returns an error for broken contracts: a nil rover, an invalid
// budget, a recharge that does not restore the budget, or terrain that
// contradicts an earlier recording.
package explore
