// Package port defines the interfaces (ports) the service layer depends on.
// Following hexagonal architecture, these ports decouple the service
// layer from concrete implementations.
package port

import "github.com/boddenberg/boleto-barcode-go/internal/bank"

// ProfileRegistry resolves bank layouts by their 3-digit code.
type ProfileRegistry interface {
	Lookup(code string) (bank.Profile, error)
	Profiles() []bank.Profile
}
