package dragdrop

// DiffFunc returns the topics that changed between two published states.
type DiffFunc[S any] func(prev, next S) []Topic

// subscriber is one registered listener. A nil topics set means "all".
type subscriber[S any] struct {
	id      uint32
	all     bool
	topics  map[Topic]struct{}
	fn      func(S)
	removed bool
}

// matches reports whether the subscriber observes any of the changed topics.
func (sub *subscriber[S]) matches(changed []Topic) bool {
	if sub.all {
		return true
	}
	for _, t := range changed {
		if _, ok := sub.topics[t]; ok {
			return true
		}
	}
	return false
}

// TopicStore holds a value of type S and broadcasts each new value only to
// the listeners whose topics changed. The store is not safe for concurrent
// use; it is driven from the host's single update goroutine.
type TopicStore[S any] struct {
	state  S
	diff   DiffFunc[S]
	subs   []*subscriber[S]
	nextID uint32
}

// NewTopicStore creates a store seeded with initial. diff decides which
// topics a Publish touches.
func NewTopicStore[S any](initial S, diff DiffFunc[S]) *TopicStore[S] {
	if diff == nil {
		panic("dragdrop: TopicStore requires a diff function")
	}
	return &TopicStore[S]{state: initial, diff: diff}
}

// State returns the most recently published value.
func (s *TopicStore[S]) State() S {
	return s.state
}

// Subscribe registers fn for the given topics. fn runs after any Publish
// whose changed topics intersect topics. An empty topic list never fires.
func (s *TopicStore[S]) Subscribe(topics []Topic, fn func(S)) Subscription {
	set := make(map[Topic]struct{}, len(topics))
	for _, t := range topics {
		set[t] = struct{}{}
	}
	return s.add(&subscriber[S]{topics: set, fn: fn})
}

// SubscribeAll registers fn for every Publish that changes at least one topic.
func (s *TopicStore[S]) SubscribeAll(fn func(S)) Subscription {
	return s.add(&subscriber[S]{all: true, fn: fn})
}

func (s *TopicStore[S]) add(sub *subscriber[S]) Subscription {
	if sub.fn == nil {
		panic("dragdrop: cannot subscribe a nil listener")
	}
	s.nextID++
	sub.id = s.nextID
	s.subs = append(s.subs, sub)
	return Subscription{id: sub.id, remove: s.remove}
}

// remove drops the subscriber with the given id. The entry is marked so an
// in-flight Publish holding a snapshot skips it.
func (s *TopicStore[S]) remove(id uint32) {
	for i, sub := range s.subs {
		if sub.id == id {
			sub.removed = true
			copy(s.subs[i:], s.subs[i+1:])
			s.subs[len(s.subs)-1] = nil
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

// Len returns the number of live subscriptions.
func (s *TopicStore[S]) Len() int {
	return len(s.subs)
}

// Publish replaces the stored value with next and notifies every listener
// whose topics intersect diff(prev, next). The state is replaced before any
// listener runs, and each listener receives the current state at the time it
// is called, so a Publish from inside a listener is visible to the rest.
// Listeners added during notification wait for the next Publish; listeners
// removed during notification are not called.
// The changed topics are returned.
func (s *TopicStore[S]) Publish(next S) []Topic {
	prev := s.state
	changed := s.diff(prev, next)
	s.state = next

	if len(s.subs) == 0 || len(changed) == 0 {
		return changed
	}

	var matched []*subscriber[S]
	for _, sub := range s.subs {
		if sub.matches(changed) {
			matched = append(matched, sub)
		}
	}
	for _, sub := range matched {
		if sub.removed {
			continue
		}
		sub.fn(s.state)
	}
	return changed
}

// Subscription allows removing a registered listener.
type Subscription struct {
	id     uint32
	remove func(uint32)
}

// Remove unregisters the listener. Calling Remove more than once, or on the
// zero Subscription, is a no-op.
func (h Subscription) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}
