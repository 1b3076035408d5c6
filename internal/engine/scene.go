package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	byUID       map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		byUID:       make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.byUID[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.byUID, g.UID)
			return
		}
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.byUID[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// PhysicsTick runs the fixed simulation step on every object. The scheduler
// guarantees this happens before Update within a frame.
func (s *Scene) PhysicsTick(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.PhysicsTick(deltaTime)
	}
}

// Update runs the variable frame tick on every object.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
