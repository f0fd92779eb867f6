// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces: note bookkeeping, action item completion, and extraction runs
// that persist what they find.
package app
