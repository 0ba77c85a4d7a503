// Package io reads and writes knapsack problem files.
//
// # Formats
//
// A problem is a capacity and a list of items. JSON:
//
//	{
//	  "capacity": 4,
//	  "items": [
//	    {"value": 1500, "weight": 1},
//	    {"value": 2000, "weight": 3},
//	    {"value": 3000, "weight": 4}
//	  ]
//	}
//
// TOML:
//
//	capacity = 4
//
//	[[items]]
//	value = 1500
//	weight = 1
//
//	[[items]]
//	value = 2000
//	weight = 3
//
// The capacity is optional so a file can hold just an item set that is
// solved at several capacities (see the sweep command).
//
// # Import
//
// [ReadFile] picks the decoder from the file extension (.json or .toml).
// [ReadJSON] and [ReadTOML] decode from any io.Reader. Every reader rejects
// items with a negative value or weight and unknown TOML keys.
//
// # Export
//
// [WriteFile], [WriteJSON] and [WriteTOML] are the inverse operations. Item
// order is preserved, which matters because solution paths index into the
// density-sorted sequence derived from it.
package io
