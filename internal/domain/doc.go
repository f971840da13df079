// Package domain contains the core model for cartlab: the numeric-string
// classifier, the shared coordinate bounds and the bounded point value.
//
// The domain is I/O-agnostic: it does not read from terminals, parse YAML or
// touch the filesystem. Infra/adapters map into/from these types.
package domain
