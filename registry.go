package jobclip

import "strings"

// Registry maps page hostnames to site profiles. Known profiles are matched
// in registration order; the first whose host fragment is a substring of the
// hostname wins, and the generic profile is used when none match.
//
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	profiles []SiteProfile
	generic  SiteProfile
}

// NewRegistry creates a Registry from a generic fallback profile and known
// site profiles listed in priority order. Returns EINVALID if any profile
// lacks description locators, if a known profile has no host fragments,
// or if a site identifier is used twice.
func NewRegistry(generic SiteProfile, profiles ...SiteProfile) (*Registry, error) {
	if err := generic.Validate(); err != nil {
		return nil, err
	}

	seen := map[Site]bool{generic.Site: true}
	r := &Registry{
		profiles: make([]SiteProfile, 0, len(profiles)),
		generic:  generic.clone(),
	}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if len(p.Hosts) == 0 {
			return nil, Errorf(EINVALID, "site profile %q: host fragments required", p.Site)
		}
		if seen[p.Site] {
			return nil, Errorf(EINVALID, "site profile %q registered twice", p.Site)
		}
		seen[p.Site] = true
		r.profiles = append(r.profiles, p.clone())
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on invalid profiles.
// It is intended for static profile tables checked at startup.
func MustRegistry(generic SiteProfile, profiles ...SiteProfile) *Registry {
	r, err := NewRegistry(generic, profiles...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns a Registry holding the built-in job board profiles.
func DefaultRegistry() *Registry {
	return MustRegistry(genericProfile, linkedInProfile, seekProfile)
}

// ResolveProfile returns the profile for hostname. It never fails: hosts
// that match no known profile resolve to the generic profile.
func (r *Registry) ResolveProfile(hostname string) SiteProfile {
	hostname = strings.ToLower(hostname)
	for _, p := range r.profiles {
		for _, fragment := range p.Hosts {
			if strings.Contains(hostname, fragment) {
				return p.clone()
			}
		}
	}
	return r.generic.clone()
}

// Profiles returns all profiles in resolution order, generic last.
func (r *Registry) Profiles() []SiteProfile {
	out := make([]SiteProfile, 0, len(r.profiles)+1)
	for _, p := range r.profiles {
		out = append(out, p.clone())
	}
	return append(out, r.generic.clone())
}
