/*
Package ordmap provides read-only, insertion-ordered maps for grouping results.

Keys are matched either with Go's == ([New]) or with a caller supplied
[Equality] ([NewFunc]), which lets callers group keys that are "equal" without
being identical, such as strings compared case-insensitively:

	m := ordmap.NewFunc[string, int](ordmap.FoldString)
	m.Set("Go", 1)
	m.Get("GO") // 1, true

Iteration order is always the order in which keys were first inserted.

# Null keys

Some groupings have an out-of-band "no key" bucket. [Nullable] lifts a key type
to one that can also express that bucket, and [NullableKeyMap] attaches a single
null entry to an existing map without touching its key matching. The null
entry is always iterated after every present key.
*/
package ordmap
