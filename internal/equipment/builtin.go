package equipment

// Builtin returns a small catalog covering the stock 3025-era loadouts, used
// when no catalog database is configured.
func Builtin() *Catalog {
	c := NewCatalog()
	add := func(name, internal string, cat Category, slots, shots int) {
		t := &Type{Name: name, InternalName: internal, Category: cat, CritSlots: slots, Shots: shots}
		Classify(t)
		c.Add(t)
	}

	add("Small Laser", "ISSmallLaser", CategoryWeapon, 1, 0)
	add("Medium Laser", "ISMediumLaser", CategoryWeapon, 1, 0)
	add("Large Laser", "ISLargeLaser", CategoryWeapon, 2, 0)
	add("PPC", "ISPPC", CategoryWeapon, 3, 0)
	add("Flamer", "ISFlamer", CategoryWeapon, 1, 0)
	add("Machine Gun", "ISMachine Gun", CategoryWeapon, 1, 0)
	add("AC/2", "ISAC2", CategoryWeapon, 1, 0)
	add("AC/5", "ISAC5", CategoryWeapon, 4, 0)
	add("AC/10", "ISAC10", CategoryWeapon, 7, 0)
	add("AC/20", "ISAC20", CategoryWeapon, 10, 0)
	add("LRM 5", "ISLRM5", CategoryWeapon, 1, 0)
	add("LRM 10", "ISLRM10", CategoryWeapon, 2, 0)
	add("LRM 15", "ISLRM15", CategoryWeapon, 3, 0)
	add("LRM 20", "ISLRM20", CategoryWeapon, 5, 0)
	add("SRM 2", "ISSRM2", CategoryWeapon, 1, 0)
	add("SRM 4", "ISSRM4", CategoryWeapon, 1, 0)
	add("SRM 6", "ISSRM6", CategoryWeapon, 2, 0)
	add("Gauss Rifle", "ISGaussRifle", CategoryWeapon, 7, 0)
	add("Narc Missile Beacon", "ISNarcBeacon", CategoryWeapon, 2, 0)

	add("AC/2 Ammo", "ISAmmoAC2", CategoryAmmo, 1, 45)
	add("AC/5 Ammo", "ISAmmoAC5", CategoryAmmo, 1, 20)
	add("AC/10 Ammo", "ISAmmoAC10", CategoryAmmo, 1, 10)
	add("AC/20 Ammo", "ISAmmoAC20", CategoryAmmo, 1, 5)
	add("LRM 5 Ammo", "ISAmmoLRM5", CategoryAmmo, 1, 24)
	add("LRM 10 Ammo", "ISAmmoLRM10", CategoryAmmo, 1, 12)
	add("LRM 15 Ammo", "ISAmmoLRM15", CategoryAmmo, 1, 8)
	add("LRM 20 Ammo", "ISAmmoLRM20", CategoryAmmo, 1, 6)
	add("SRM 2 Ammo", "ISAmmoSRM2", CategoryAmmo, 1, 50)
	add("SRM 4 Ammo", "ISAmmoSRM4", CategoryAmmo, 1, 25)
	add("SRM 6 Ammo", "ISAmmoSRM6", CategoryAmmo, 1, 15)
	add("Machine Gun Ammo", "ISAmmoMG", CategoryAmmo, 1, 200)
	add("Gauss Ammo", "ISGaussAmmo", CategoryAmmo, 1, 8)

	add("Heat Sink", "Heat Sink", CategoryMisc, 1, 0)
	add("Double Heat Sink", "ISDoubleHeatSink", CategoryMisc, 3, 0)
	add("Jump Jet", "Jump Jet", CategoryMisc, 1, 0)
	add("CASE", "ISCASE", CategoryMisc, 1, 0)
	add("Endo Steel", "ISEndoSteel", CategoryMisc, 1, 0)
	add("Ferro-Fibrous", "ISFerroFibrous", CategoryMisc, 1, 0)
	add("UMU", "UMU", CategoryMisc, 1, 0)
	return c
}
