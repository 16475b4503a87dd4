package mission

import (
	"fmt"
	"log/slog"

	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/overmap"
)

// TargetParams describes a generalized mission target search.
type TargetParams struct {
	Terrain overmap.TerrainID

	// SearchOrigin overrides the player's current overmap position.
	SearchOrigin *model.Tripoint

	// ReplaceableTerrain, when set, lets the search overwrite a cell of
	// that type with Terrain if no existing match is found.
	ReplaceableTerrain *overmap.TerrainID

	// Special, when set, lets the search stamp the whole special and
	// then look for Terrain inside it.
	Special overmap.SpecialID

	// RevealRadius reveals around the found target when positive.
	RevealRadius int32

	MustSee bool
	Random  bool

	// CreateIfNecessary allows terrain creation on a failed search.
	CreateIfNecessary bool

	// SearchRange bounds the search; 0 uses the manager's configured
	// range, falling back to the overmap default.
	SearchRange int32
}

// NewTargetParams returns params with the defaults handlers expect:
// closest match, creation allowed, default range.
func NewTargetParams(ter overmap.TerrainID) TargetParams {
	return TargetParams{Terrain: ter, CreateIfNecessary: true}
}

// AssignTarget finds (or creates) a cell matching the params, reveals
// around it if requested, and attaches it to the mission. Returns the
// target and whether one was assigned.
func (mgr *Manager) AssignTarget(params TargetParams, miss *model.Mission) (model.Tripoint, bool) {
	origin := mgr.world.Player().OmtLocation()
	if params.SearchOrigin != nil {
		origin = *params.SearchOrigin
	}
	if params.SearchRange == 0 {
		params.SearchRange = mgr.searchRange.Load()
	}

	var target model.Tripoint
	if params.Random {
		target = mgr.omb.FindRandom(origin, params.Terrain, params.SearchRange, params.MustSee)
	} else {
		target = mgr.omb.FindClosest(origin, params.Terrain, params.SearchRange, params.MustSee)
	}

	// No existing match: try to create one, unless the player had to
	// have seen it beforehand.
	if !target.IsValid() && params.CreateIfNecessary && !params.MustSee {
		if params.Special != "" {
			if mgr.omb.PlaceSpecial(params.Special, origin, params.SearchRange) {
				target = mgr.omb.FindClosest(origin, params.Terrain, params.SearchRange, false)
			}
		} else if params.ReplaceableTerrain != nil {
			target = mgr.omb.FindRandom(origin, *params.ReplaceableTerrain, params.SearchRange, false)
			if target.IsValid() {
				mgr.omb.SetTer(target, params.Terrain)
			}
		}
	}

	if !target.IsValid() {
		slog.Error("unable to find and assign mission target",
			"terrain", params.Terrain,
			"mission", miss.UID())
		return model.InvalidTripoint, false
	}

	if params.RevealRadius > 0 {
		mgr.omb.Reveal(target, params.RevealRadius)
	}
	miss.SetTarget(target)
	return target, true
}

// targetOmTer finds the closest cell of the terrain type on the given
// z-level, reveals around it when revealRad is non-negative, and makes
// it the mission target.
func (mgr *Manager) targetOmTer(ter overmap.TerrainID, revealRad int32, miss *model.Mission, mustSee bool, z int32) model.Tripoint {
	origin := mgr.world.Player().OmtLocation().WithZ(z)
	site := mgr.omb.FindClosest(origin, ter, 0, mustSee)
	if site.IsValid() && revealRad >= 0 {
		mgr.omb.Reveal(site, revealRad)
	}
	miss.SetTarget(site)
	return site
}

// targetOmTerRandom picks a random cell of the terrain type within
// searchRange of origin (player position when origin is nil).
func (mgr *Manager) targetOmTerRandom(ter overmap.TerrainID, revealRad int32, miss *model.Mission, mustSee bool, searchRange int32, origin *model.Tripoint) model.Tripoint {
	start := mgr.world.Player().OmtLocation()
	if origin != nil {
		start = *origin
	}
	site := mgr.omb.FindRandom(start, ter, searchRange, mustSee)
	if site.IsValid() && revealRad >= 0 {
		mgr.omb.Reveal(site, revealRad)
	}
	miss.SetTarget(site)
	return site
}

// randomHouseInCity selects a random house within the city borders,
// falling back to the city center.
func (mgr *Manager) randomHouseInCity(cref overmap.CityRef) model.Tripoint {
	center := cref.City.Pos.WithZ(cref.AbsSmPos.Z)
	size := cref.City.Size

	var valid []model.Tripoint
	for x := center.X - size; x <= center.X+size; x++ {
		for y := center.Y - size; y <= center.Y+size; y++ {
			pos := model.NewTripoint(x, y, center.Z)
			if mgr.omb.CheckTerType(overmap.TerHouse, pos) {
				valid = append(valid, pos)
			}
		}
	}
	return randomEntry(valid, center)
}

// randomHouseInClosestCity selects a random house in the city nearest
// the player, falling back to the player's position when no city is
// known.
func (mgr *Manager) randomHouseInClosestCity() model.Tripoint {
	player := mgr.world.Player()
	cref := mgr.omb.ClosestCity(player.SmLocation())
	if !cref.Valid() {
		slog.Error("could not find closest city")
		return player.OmtLocation()
	}
	return mgr.randomHouseInCity(cref)
}

// closestLabEntrance targets the nearest lab stairway, comparing
// surface entrances against the ground above hidden underground stairs.
func (mgr *Manager) closestLabEntrance(origin model.Tripoint, revealRad int32, miss *model.Mission) model.Tripoint {
	surface := mgr.omb.FindClosest(origin.WithZ(0), overmap.TerLabStairs, 0, false)
	underground := mgr.omb.FindClosest(origin.WithZ(-1), overmap.TerHiddenLabStairs, 0, false)
	if underground.IsValid() {
		underground = underground.WithZ(0)
	}

	var closest model.Tripoint
	switch {
	case !surface.IsValid():
		closest = underground
	case !underground.IsValid():
		closest = surface
	case surface.SquareDist(origin) <= underground.SquareDist(origin):
		closest = surface
	default:
		closest = underground
	}

	if closest.IsValid() && revealRad >= 0 {
		mgr.omb.Reveal(closest, revealRad)
	}
	miss.SetTarget(closest)
	return closest
}

// revealRoad reveals the road route between the closest roads to the
// two points.
func (mgr *Manager) revealRoad(source, dest model.Tripoint) bool {
	sourceRoad := mgr.omb.FindClosest(source, overmap.TerRoad, 3, false)
	destRoad := mgr.omb.FindClosest(dest, overmap.TerRoad, 3, false)
	return mgr.omb.RevealRoute(sourceRoad, destRoad)
}

// revealDestination picks a random cell of the terrain type at a
// medium distance and reveals around it.
func (mgr *Manager) revealDestination(ter overmap.TerrainID) model.Tripoint {
	origin := mgr.world.Player().OmtLocation()
	center := mgr.omb.FindRandom(origin, ter, rng(40, 80), false)
	if center.IsValid() {
		mgr.omb.Reveal(center, 2)
	}
	return center
}

// RevealTarget marks a random destination of the terrain type on the
// player's map, makes it the mission target, and sometimes reveals the
// road leading there.
func (mgr *Manager) RevealTarget(miss *model.Mission, ter overmap.TerrainID) error {
	npc, err := mgr.findNpc(miss.NpcID())
	if err != nil {
		return err
	}

	dest := mgr.revealDestination(ter)
	if !dest.IsValid() {
		return nil
	}

	player := mgr.world.Player()
	player.AddMessage(fmt.Sprintf("%s has marked the only %s known to them on your map.",
		npc.Name(), mgr.omb.Ter(dest)))
	miss.SetTarget(dest)

	if oneIn(3) {
		if mgr.revealRoad(player.OmtLocation(), dest) {
			player.AddMessage(fmt.Sprintf("%s also marks the road that leads to it...", npc.Name()))
		}
	}
	return nil
}

// RevealAnyTarget picks one of the terrain types at random and reveals
// it as the mission target.
func (mgr *Manager) RevealAnyTarget(miss *model.Mission, terrains []overmap.TerrainID) error {
	if len(terrains) == 0 {
		return fmt.Errorf("no terrain types to reveal")
	}
	return mgr.RevealTarget(miss, terrains[rng(0, int32(len(terrains)-1))])
}
