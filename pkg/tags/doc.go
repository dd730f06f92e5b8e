// Package tags interns painting tags and provides compact set operations.
//
// Input files describe tags as free-form strings. Comparing string sets for
// every candidate pair dominates the cost of pairing and sequencing, so tags
// are interned once into dense [ID] values by a [Dictionary], and each tag
// set is stored as a [Set]: a sorted, duplicate-free slice of IDs. Counting
// the intersection of two sets is then a single linear merge with no
// allocation.
//
// # Example
//
//	dict := tags.NewDictionary()
//	a := tags.NewSet(dict.Intern("cat"), dict.Intern("beach"))
//	b := tags.NewSet(dict.Intern("beach"), dict.Intern("sun"))
//
//	tags.CommonCount(a, b) // 1
//	tags.Union(a, b).Len() // 3
package tags
