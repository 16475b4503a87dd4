// Package data holds the static content tables the mission layer draws
// from: name pools, weighted item groups, and recruit templates.
package data

import "math/rand/v2"

// Female given names used for uniquely named mission monsters.
var femaleGivenNames = []string{
	"Abigail", "Beatrice", "Carmen", "Dolores", "Eleanor",
	"Francesca", "Gloria", "Harriet", "Irene", "Josephine",
	"Katherine", "Lucille", "Margaret", "Nadia", "Ophelia",
	"Patricia", "Rosalind", "Sylvia", "Theresa", "Vivian",
}

// Full names used when randomizing recruit NPCs.
var npcGivenNames = []string{
	"Alex", "Casey", "Drew", "Ellis", "Frankie",
	"Harper", "Jordan", "Morgan", "Quinn", "Riley",
	"Sam", "Taylor", "Wyatt", "Jesse", "Rowan",
}

var npcFamilyNames = []string{
	"Barnes", "Calloway", "Dunn", "Ferrell", "Graves",
	"Holt", "Kessler", "Mercer", "Nash", "Redfield",
	"Santos", "Thorne", "Vance", "Whitlock", "Young",
}

// RandomFemaleGivenName returns a random entry from the female name pool.
func RandomFemaleGivenName() string {
	return femaleGivenNames[rand.IntN(len(femaleGivenNames))]
}

// RandomNpcName returns a random "Given Family" NPC name.
func RandomNpcName() string {
	return npcGivenNames[rand.IntN(len(npcGivenNames))] + " " +
		npcFamilyNames[rand.IntN(len(npcFamilyNames))]
}
