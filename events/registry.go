package events

var typeToName = map[EventType]string{
	EventRoundStarted: "RoundStarted",
	EventRoundEnded:   "RoundEnded",
	EventMoleSpawned:  "MoleSpawned",
	EventMoleExpired:  "MoleExpired",
	EventMoleStruck:   "MoleStruck",
	EventComboFlash:   "ComboFlash",
	EventNewHighScore: "NewHighScore",
	EventPauseChanged: "PauseChanged",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, name := range typeToName {
		m[name] = t
	}
	return m
}()

// String returns the registered event name
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}
