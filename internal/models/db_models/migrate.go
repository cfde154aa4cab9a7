package db_models

// All lists every persisted model in dependency order, leaves first.
func All() []interface{} {
	return []interface{}{
		&Participant{},
		&Location{},
		&Holiday{},
		&Activity{},
		&Invitation{},
		&Participate{},
		&Message{},
	}
}
