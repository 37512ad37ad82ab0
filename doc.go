// Package amphipod solves the amphipod burrow puzzle: four kinds of tokens
// start scrambled in four rooms below a hallway and must be sorted into their
// home rooms for the least total energy.
//
// Under the hood, everything is organized under three subpackages:
//
//	burrow/  burrow topology, immutable State, legal moves, 128-bit state keys,
//	         diagram parsing and rendering
//	solver/  memoized, cycle-guarded depth-first search for the minimum cost
//	input/   loader for the daily puzzle input files
//
// and one command:
//
//	cmd/burrow  prints the answer for the folded and the unfolded burrow
//
// Quick ASCII example (depth 2, minimum cost 12521):
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
package amphipod
