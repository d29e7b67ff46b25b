package models

// Station is a physical site aggregating chargers. Chargers keep station
// insertion order; duplicate-id checks happen at the registry, which indexes
// chargers globally.
type Station struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Location string     `json:"location"`
	Chargers []*Charger `json:"chargers"`
}

// NewStation returns a station without chargers.
func NewStation(id int, name, location string) *Station {
	return &Station{ID: id, Name: name, Location: location}
}

// AddCharger appends a charger to the station.
func (s *Station) AddCharger(c *Charger) {
	s.Chargers = append(s.Chargers, c)
}

// AvailableChargers returns chargers ready for a session, in insertion
// order. The slice is computed fresh on every call.
func (s *Station) AvailableChargers() []*Charger {
	var available []*Charger
	for _, c := range s.Chargers {
		if c.IsAvailable() {
			available = append(available, c)
		}
	}
	return available
}

// ReserveCharger marks the earliest-added available charger occupied and
// returns it, or nil when the station is full.
func (s *Station) ReserveCharger() *Charger {
	for _, c := range s.Chargers {
		if c.IsAvailable() {
			c.Status = ChargerStatusOccupied
			return c
		}
	}
	return nil
}
