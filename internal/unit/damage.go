package unit

// ─── Phase-end damage ───────────────────────────────────────────────────────

// ApplyPendingDamage resolves everything flagged during the phase: hit or
// missing equipment is destroyed and emptied, damaged slots are destroyed and
// doomed locations become destroyed.
func (u *Unit) ApplyPendingDamage() {
	for _, m := range u.equipment {
		if m.Hit || m.Missing {
			m.Shots = 0
			m.Destroyed = true
		}
	}
	for loc := range u.locs {
		l := &u.locs[loc]
		for _, cs := range l.slots {
			if cs != nil && cs.Damaged() {
				cs.Destroyed = true
			}
		}
		if l.internal.IsDoomed() {
			l.armor = Destroyed
			if u.kind.HasRearArmor(loc) {
				l.rearArmor = Destroyed
			}
			l.internal = Destroyed
			u.purgePods(loc)
		}
	}
}

// EngineHitsThisPhase counts engine slots lost this phase, including those
// lost with a destroyed location.
func (u *Unit) EngineHitsThisPhase() int { return u.engineHitsThisPhase }

func (u *Unit) ResetPhase() { u.engineHitsThisPhase = 0 }

// ─── Location destruction ───────────────────────────────────────────────────

// DestroyLocation dooms loc and every location that depends on it. Locations
// that are already doomed or destroyed are left alone, so repeated calls have
// no further effect. It returns the locations doomed by this call in the
// order they fell.
func (u *Unit) DestroyLocation(loc int, blownOff bool) []int {
	u.mustLoc(loc)
	var doomed []int
	pending := []int{loc}
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if u.LocationBad(cur) {
			continue
		}

		l := &u.locs[cur]
		l.armor = Doomed
		if u.kind.HasRearArmor(cur) {
			l.rearArmor = Doomed
		}
		l.internal = Doomed
		if cur == loc && blownOff {
			l.blownOff = true
		}

		for _, m := range u.equipment {
			if m.At(cur) && m.Type.Hittable {
				m.Missing = true
			}
		}
		for _, cs := range l.slots {
			if cs == nil {
				continue
			}
			if cs.is(SlotSystem, SystemEngine) && !cs.Damaged() {
				u.engineHitsThisPhase++
			}
			cs.Missing = true
		}
		u.purgePods(cur)
		doomed = append(doomed, cur)

		u.log.Debug().
			Str("loc", u.LocationAbbr(cur)).
			Bool("blownOff", cur == loc && blownOff).
			Msg("location destroyed")

		if dep := u.kind.DependentLocation(cur); dep != LocNone && !u.LocationBad(dep) {
			pending = append(pending, dep)
		}
	}
	return doomed
}

// CanTransferCriticals reports whether every slot that could ever take a
// critical hit in loc is destroyed, so a critical must roll a new location.
func (u *Unit) CanTransferCriticals(loc int) bool {
	for _, cs := range u.slotsAt(loc) {
		if cs != nil && cs.EverHittable() && !cs.Destroyed {
			return false
		}
	}
	return true
}

// HitCritical marks a slot and its equipment hit. It reports false when the
// slot is empty or cannot be hit.
func (u *Unit) HitCritical(loc, slot int) bool {
	cs := u.CriticalAt(loc, slot)
	if cs == nil || !cs.Hittable() {
		return false
	}
	if cs.is(SlotSystem, SystemEngine) && !cs.Damaged() {
		u.engineHitsThisPhase++
	}
	cs.Hit = true
	if cs.Mount != nil {
		cs.Mount.Hit = true
	}
	return true
}

// BreachLocation floods or vents a location: every slot and mount in it is
// breached.
func (u *Unit) BreachLocation(loc int) {
	u.SetExposure(loc, ExposureBreached)
	for _, cs := range u.slotsAt(loc) {
		if cs != nil {
			cs.Breached = true
		}
	}
	for _, m := range u.equipment {
		if m.At(loc) {
			m.Breached = true
		}
	}
}

// ─── Damage absorption ──────────────────────────────────────────────────────

// DamageStep records what one location absorbed.
type DamageStep struct {
	Location       int
	Rear           bool
	ArmorDamage    int
	InternalDamage int
	// StructureExposed is set when structure took damage and a critical
	// check is due.
	StructureExposed bool
	Destroyed        bool
}

type DamageReport struct {
	Steps []DamageStep
	// Destroyed lists every location doomed by the damage, including
	// dependents.
	Destroyed []int
	// Lost is damage left over with nowhere to transfer.
	Lost int
}

// Damage applies amount points at hit: armor first, then structure, then
// the excess moves inward along TransferLocation.
func (u *Unit) Damage(hit HitData, amount int) DamageReport {
	var rep DamageReport
	for amount > 0 {
		loc := hit.Location
		u.mustLoc(loc)

		if !u.LocationBad(loc) {
			step := DamageStep{Location: loc, Rear: hit.Rear && u.kind.HasRearArmor(loc)}

			if armor := u.Armor(loc, step.Rear); armor.IsPoints() && armor.Amount() > 0 {
				absorbed := min(armor.Amount(), amount)
				u.SetArmor(Points(armor.Amount()-absorbed), loc, step.Rear)
				step.ArmorDamage = absorbed
				amount -= absorbed
			}

			if amount > 0 {
				is := u.Internal(loc).Amount()
				absorbed := min(is, amount)
				u.SetInternal(Points(is-absorbed), loc)
				step.InternalDamage = absorbed
				step.StructureExposed = absorbed > 0
				amount -= absorbed
				if is-absorbed <= 0 {
					step.Destroyed = true
					rep.Destroyed = append(rep.Destroyed, u.DestroyLocation(loc, false)...)
				}
			}
			rep.Steps = append(rep.Steps, step)
		}

		if amount <= 0 {
			break
		}
		next, ok := u.TransferLocation(hit)
		if !ok {
			rep.Lost += amount
			break
		}
		hit = next
	}
	return rep
}
