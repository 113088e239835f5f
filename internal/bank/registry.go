package bank

import (
	"fmt"
	"sort"

	"github.com/boddenberg/boleto-barcode-go/internal/domain"
)

// Registry maps bank codes to profiles. It is built once and only read
// afterwards, so it needs no locking.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry registers the given profiles. Registering two profiles for
// the same bank code is a programming error and panics.
func NewRegistry(profiles ...Profile) *Registry {
	r := &Registry{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if _, dup := r.profiles[p.Code()]; dup {
			panic(fmt.Sprintf("bank: duplicate profile for code %s", p.Code()))
		}
		r.profiles[p.Code()] = p
	}
	return r
}

// DefaultRegistry holds every built-in profile.
func DefaultRegistry() *Registry {
	return NewRegistry(CaixaSIGCB())
}

// Lookup returns the profile for a bank code.
func (r *Registry) Lookup(code string) (Profile, error) {
	p, ok := r.profiles[code]
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "bank profile", ID: code}
	}
	return p, nil
}

// Profiles returns all profiles ordered by bank code.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out
}
