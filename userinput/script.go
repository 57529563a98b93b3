// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import "github.com/jetsetilly/gopher8/govern"

// Script is an input source that returns a predefined snapshot for each
// cycle. Once the script has been exhausted the final snapshot is repeated,
// with the control signal removed. An empty script returns the zero
// snapshot.
type Script struct {
	Snapshots []Snapshot
	idx       int
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(snapshots ...Snapshot) *Script {
	return &Script{Snapshots: snapshots}
}

// PollInput returns the next snapshot in the script.
func (s *Script) PollInput() (Snapshot, error) {
	if len(s.Snapshots) == 0 {
		return Snapshot{}, nil
	}

	if s.idx >= len(s.Snapshots) {
		last := s.Snapshots[len(s.Snapshots)-1]
		last.Control = govern.NoControl
		return last, nil
	}

	snp := s.Snapshots[s.idx]
	s.idx++
	return snp, nil
}

// Remaining returns the number of snapshots that have not been returned.
func (s *Script) Remaining() int {
	return len(s.Snapshots) - s.idx
}

// Keys is a convenience function that creates a snapshot with the listed
// keys held down.
func Keys(keys ...uint8) Snapshot {
	var s Snapshot
	for _, k := range keys {
		s.Keys[k&0x0f] = true
	}
	return s
}
