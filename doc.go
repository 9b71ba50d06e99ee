// Command surveyor explores unknown planets with a simulated rover and
// writes the discovered terrain as flat text maps.
//
// Two schedulers are available:
//
//	unlimited: breadth-first frontier exploration with probe-and-return
//	budget:    round-trip gated excursions from home with recharges
//
// Usage:
//
//	surveyor map [planet files...]   map planets (built-in samples by default)
//	surveyor generate -o planet.txt  write a random surface
//	surveyor version
//
// Configuration is read from ./surveyor.yaml and SURVEYOR_* environment
// variables, for example SURVEYOR_MISSION_MAX_BATTERY=30.
package main
