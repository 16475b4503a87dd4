package model

import "sync"

// Player is the mission layer's view of the player character: a world
// position, an inventory to receive mission items, and a message feed.
type Player struct {
	mu sync.RWMutex

	smLocation Tripoint // global submap coordinates
	inventory  []Item
	messages   []string
}

// NewPlayer creates a player at the given submap position.
func NewPlayer(sm Tripoint) *Player {
	return &Player{smLocation: sm}
}

// SmLocation returns the player's global submap position.
func (p *Player) SmLocation() Tripoint {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.smLocation
}

// OmtLocation returns the overmap terrain cell the player occupies.
func (p *Player) OmtLocation() Tripoint {
	return SubmapToOvermap(p.SmLocation())
}

// MoveTo updates the player's global submap position.
func (p *Player) MoveTo(sm Tripoint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.smLocation = sm
}

// AddItem puts an item into the player's inventory.
func (p *Player) AddItem(it Item) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inventory = append(p.inventory, it)
}

// HasItem reports whether the player carries an item of the given type.
func (p *Player) HasItem(id ItemID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, it := range p.inventory {
		if it.ID == id {
			return true
		}
	}
	return false
}

// AddMessage appends a line to the player's message feed.
func (p *Player) AddMessage(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
}

// Messages returns a copy of the player's message feed.
func (p *Player) Messages() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, len(p.messages))
	copy(out, p.messages)
	return out
}
