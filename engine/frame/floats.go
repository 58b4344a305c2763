package frame

import "sync"

// FloatList is the mutex-protected set of floats registered with a block
// formatting context (CSS 2.2 §9.5). Layout consults it to carve excluded
// regions out of the context's content area via core/dimen.Region.
type FloatList struct {
	mutex  sync.Mutex
	floats []Container
}

// AppendFloat registers float with the list.
func (l *FloatList) AppendFloat(float Container) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.floats = append(l.floats, float)
}

// Contains reports whether float is already registered.
func (l *FloatList) Contains(float Container) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	for _, f := range l.floats {
		if f == float {
			return true
		}
	}
	return false
}

// Remove deregisters float, reporting whether it was present.
func (l *FloatList) Remove(float Container) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	for i, f := range l.floats {
		if f == float {
			l.floats = append(l.floats[:i], l.floats[i+1:]...)
			return true
		}
	}
	return false
}

// Floats returns a snapshot copy of the registered floats.
func (l *FloatList) Floats() []Container {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	floats := make([]Container, len(l.floats))
	copy(floats, l.floats)
	return floats
}
