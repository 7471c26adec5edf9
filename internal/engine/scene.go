package engine

// Scene owns the live entities. Other packages borrow *Entity pointers for
// the duration of a call and never keep copies.
type Scene struct {
	Name     string
	entities []*Entity
	byID     map[ID]*Entity
	nextID   ID

	// OnAdded fires after an entity has been added and given its ID.
	OnAdded EventWithArg[*Entity]
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		entities: make([]*Entity, 0),
		byID:     make(map[ID]*Entity),
	}
}

// Add assigns the next ID to e, stores it and returns the ID.
// Empty names default to the kind name.
func (s *Scene) Add(e *Entity) ID {
	if s.byID == nil {
		s.byID = make(map[ID]*Entity)
	}
	s.nextID++
	e.ID = s.nextID
	if e.Name == "" {
		e.Name = e.Kind.String()
	}
	s.entities = append(s.entities, e)
	s.byID[e.ID] = e
	s.OnAdded.Invoke(e)
	return e.ID
}

// Remove drops the entity with the given ID. Unknown IDs are ignored.
// Removed IDs are not handed out again.
func (s *Scene) Remove(id ID) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, e := range s.entities {
		if e.ID == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

// Find returns the entity with the given ID or nil.
func (s *Scene) Find(id ID) *Entity {
	if id == NoID {
		return nil
	}
	return s.byID[id]
}

// ForEachSelectable calls fn for every selectable entity in insertion order.
// Iteration stops when fn returns false.
func (s *Scene) ForEachSelectable(fn func(e *Entity) bool) {
	for _, e := range s.entities {
		if !e.Selectable() {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Entities returns all entities in insertion order. The slice must not be modified.
func (s *Scene) Entities() []*Entity {
	return s.entities
}

func (s *Scene) Len() int {
	return len(s.entities)
}
