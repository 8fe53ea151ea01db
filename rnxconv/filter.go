package rnxconv

/*------------------------------------------------------------------------------
* filter.go : selection filter engine (C9) - evaluated just before writing,
*             never inside a save path, so that AddObs/AddNav stay idempotent
*
* reference : original_source/CommonClasses/RinexData.cpp's setFilter/
*             saveObsData filter application, gnssgo/renix.go's SetSysMask/
*             RnxObsIndex system-and-observable gating
*-----------------------------------------------------------------------------*/

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// filterState holds the validated selection a prior SetFilter call
// installed: per-system satellite allow-lists and per-system observable
// allow-lists. An empty satellite list for a system means "accept every
// satellite of that system"; likewise for observables.
type filterState struct {
	sats map[byte][]int
	obs  map[byte]map[string]bool
}

// SetFilter validates selSysSat ("G03","R", "S120", ...) and selObs
// ("GC1C", "RL1C", ...) tokens against the model's declared systems/
// observables and installs the resulting filterState. An observable token
// is the system letter immediately followed by its observation code, one
// observable per token, matching RinexData::setFilter's format. Unknown
// tokens are logged as warnings; the call returns false in that case but
// any already-validated tokens remain installed (mirroring RinexData's
// "reject the bad token, keep going" behaviour).
func (m *RinexModel) SetFilter(selSysSat, selObs []string, log *Logger) bool {
	st := &filterState{sats: make(map[byte][]int), obs: make(map[byte]map[string]bool)}
	ok := true

	for _, tok := range selSysSat {
		if tok == "" {
			continue
		}
		sys := tok[0]
		if _, known := m.Systems[sys]; !known {
			log.Warnf("rnxconv: filter: unknown system %q in %q\n", string(sys), tok)
			ok = false
			continue
		}
		if len(tok) == 1 {
			st.sats[sys] = nil // bare "G" selects every GPS satellite
			continue
		}
		var prn int
		if _, err := fmt.Sscanf(tok[1:], "%d", &prn); err != nil {
			log.Warnf("rnxconv: filter: bad satellite token %q\n", tok)
			ok = false
			continue
		}
		st.sats[sys] = append(st.sats[sys], prn)
	}

	for _, tok := range selObs {
		if len(tok) < 2 {
			log.Warnf("rnxconv: filter: bad observable token %q\n", tok)
			ok = false
			continue
		}
		sysByte := tok[0]
		code := tok[1:]
		system, known := m.Systems[sysByte]
		if !known {
			log.Warnf("rnxconv: filter: unknown system %q in %q\n", string(sysByte), tok)
			ok = false
			continue
		}
		if !slices.Contains(system.Observables, code) {
			log.Warnf("rnxconv: filter: observable %q not declared for system %q\n", code, string(sysByte))
			ok = false
			continue
		}
		if st.obs[sysByte] == nil {
			st.obs[sysByte] = make(map[string]bool)
		}
		st.obs[sysByte][code] = true
	}

	m.filter = st
	return ok
}

// ClearFilter removes any installed selection, reverting to "accept
// everything".
func (m *RinexModel) ClearFilter() {
	m.filter = nil
}

// obsAllowed reports whether r survives the installed observation filter.
func (m *RinexModel) obsAllowed(r ObsRecord) bool {
	if m.filter == nil {
		return true
	}
	if len(m.filter.sats) > 0 {
		sats, selected := m.filter.sats[r.System]
		if !selected {
			return false
		}
		if len(sats) > 0 && !slices.Contains(sats, r.Sat) {
			return false
		}
	}
	if codes, tracked := m.filter.obs[r.System]; tracked {
		if !codes[r.ObsType] {
			return false
		}
	}
	return true
}

// navAllowed reports whether r survives the installed navigation filter:
// removes entries whose "system[PRN]" token is not a prefix match of a
// selected system/satellite pair; a bare system letter matches every
// satellite of that system.
func (m *RinexModel) navAllowed(r NavRecord) bool {
	if m.filter == nil {
		return true
	}
	sats, tracked := m.filter.sats[r.System]
	if !tracked {
		return len(m.filter.sats) == 0
	}
	return len(sats) == 0 || slices.Contains(sats, r.Sat)
}

// ApplyObsFilter removes rejected entries from the epoch observation
// store. Applied by the writer immediately before emission, never by
// AddObs, so that re-filtering with a different selection never loses
// data that was merely filtered out before.
func (m *RinexModel) ApplyObsFilter() {
	if m.filter == nil {
		return
	}
	m.Obs = slices.DeleteFunc(m.Obs, func(r ObsRecord) bool { return !m.obsAllowed(r) })
}

// ApplyNavFilter removes rejected entries from the whole-file navigation
// store.
func (m *RinexModel) ApplyNavFilter() {
	if m.filter == nil {
		return
	}
	m.Nav = slices.DeleteFunc(m.Nav, func(r NavRecord) bool { return !m.navAllowed(r) })
}
