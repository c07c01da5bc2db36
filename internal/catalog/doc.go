// Package catalog holds the in-memory object graph of tracked people, their
// talks, and the name index used for search.
//
// Identifiers are positional: a person's ID is its index in Graph.People and a
// talk's ID is its index in the owning person's Talks. Both are assigned at
// creation from the current count and are never reused, since nothing is ever
// deleted. The graph is loaded wholesale at process start and written back by
// the store package; it is owned by a single invocation at a time.
//
// Two people sharing a name token are indexed under the same key without any
// disambiguation. Search lists both; callers pick by ID.
package catalog
