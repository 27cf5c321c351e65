package core

import "fmt"

// maxStatus is the longest status message kept, in bytes.
const maxStatus = 80

// SetStatus formats and stores a status message stamped with the current time.
func (s *Session) SetStatus(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxStatus {
		msg = msg[:maxStatus]
	}
	s.status = msg
	s.statusTime = s.now()
}

// StatusMessage returns the current status message while it is younger than
// the status timeout, and "" otherwise.
func (s *Session) StatusMessage() string {
	if s.status == "" || s.now().Sub(s.statusTime) >= s.statusTimeout {
		return ""
	}
	return s.status
}
