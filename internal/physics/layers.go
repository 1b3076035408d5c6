package physics

// Layer is a collision filter bitmask. Colliders carry one layer bit;
// casts pass a mask of the layers they want to hit.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerTerrain
	LayerObstacle
	LayerWater
	LayerCharacter
)

// LayerAll matches every collider.
const LayerAll Layer = 0xFFFFFFFF
