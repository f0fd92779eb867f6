// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Repository ports are implemented by the storage adapter and called by the
// application layer. The model client port lives with the extraction engine
// in domain/extraction.
package ports
