// Package components defines the plain data shared by entities, systems and
// the frontends.
package components

// Kind is the coarse category of an entity.
type Kind uint8

const (
	KindGeneric Kind = iota // cosmetic, no hull
	KindShip                // has energy, takes damage
)

// Variant identifies the concrete behavior of an entity.
type Variant uint8

const (
	VariantDebris Variant = iota
	VariantPlayer
	VariantGuidedMissile
	VariantAsteroid
	VariantStraightMissile
	VariantGroundEnemy
	VariantLaser
	VariantVortex
	VariantRainCloud
	VariantGunship
	VariantTransport
	VariantSaboteur
	VariantChargedMissile

	NumVariants
)

var variantNames = [NumVariants]string{
	VariantDebris:          "debris",
	VariantPlayer:          "player",
	VariantGuidedMissile:   "guided_missile",
	VariantAsteroid:        "asteroid",
	VariantStraightMissile: "straight_missile",
	VariantGroundEnemy:     "ground_enemy",
	VariantLaser:           "laser",
	VariantVortex:          "vortex",
	VariantRainCloud:       "rain_cloud",
	VariantGunship:         "gunship",
	VariantTransport:       "transport",
	VariantSaboteur:        "saboteur",
	VariantChargedMissile:  "charged_missile",
}

func (v Variant) String() string {
	if v >= NumVariants {
		return "unknown"
	}
	return variantNames[v]
}
