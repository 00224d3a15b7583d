package room

import (
	"knockpoker-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages keeps the most recent game log messages for late joiners
// NOTE: must be called with the session lock held
func (s *Session) addLogMessages(messages []*playable.LogMessage) {
	m := append(s.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	s.logMessages = m
}
