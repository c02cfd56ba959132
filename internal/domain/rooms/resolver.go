package rooms

// Resolve computes the status of room at hour. An explicit override always
// wins over the schedule; without one, a schedule entry means occupied with
// that entry as label.
func Resolve(room Room, schedule Schedule, hour int) Occupancy {
	if room.StatusOverride != nil {
		if *room.StatusOverride == OverrideOccupied {
			label := ManualOverrideLabel
			return Occupancy{Occupied: true, Label: &label}
		}
		return Occupancy{}
	}

	if entry, ok := schedule[hour]; ok {
		label := entry
		return Occupancy{Occupied: true, Label: &label}
	}
	return Occupancy{}
}

// ParseOverride maps the wire value to the stored override. "auto" clears it.
func ParseOverride(value string) (*string, error) {
	switch value {
	case OverrideAvailable, OverrideOccupied:
		v := value
		return &v, nil
	case OverrideAuto:
		return nil, nil
	default:
		return nil, ErrInvalidOverride
	}
}
