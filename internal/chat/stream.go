// stream.go
//
// Multi-role innovation platform service: startups, research, IP filings and funding
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of innohub.
// innohub is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// innohub is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with innohub.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package chat

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/localnerve/innohub/internal/models"
)

// seenWindow bounds how many delivered ids a stream remembers
const seenWindow = 1024

// Cursor remembers which message ids a stream has delivered.
// Ids are not guaranteed to arrive in order: two concurrent senders can
// publish in the opposite order their ids were assigned. Only repeats are
// skipped, so a late, older id is still delivered.
type Cursor struct {
	last  string
	seen  map[string]struct{}
	order []string
}

// NewCursor resumes after the given id; empty means from the beginning
func NewCursor(after string) *Cursor {
	return &Cursor{last: after, seen: make(map[string]struct{}, seenWindow)}
}

// Accept reports whether id has not been delivered yet and records it
func (c *Cursor) Accept(id string) bool {
	if _, ok := c.seen[id]; ok {
		return false
	}
	if len(c.order) == seenWindow {
		delete(c.seen, c.order[0])
		c.order = c.order[1:]
	}
	c.seen[id] = struct{}{}
	c.order = append(c.order, id)
	if id > c.last {
		c.last = id
	}
	return true
}

// Last is the newest delivered id
func (c *Cursor) Last() string {
	return c.last
}

// WriteEvent writes one server-sent event
func WriteEvent(w io.Writer, id, event string, data []byte) error {
	var b strings.Builder
	if id != "" {
		fmt.Fprintf(&b, "id: %s\n", id)
	}
	if event != "" {
		fmt.Fprintf(&b, "event: %s\n", event)
	}
	for _, line := range strings.Split(string(data), "\n") {
		fmt.Fprintf(&b, "data: %s\n", line)
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteComment writes a comment line, used as a keep-alive
func WriteComment(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, ": %s\n\n", text)
	return err
}

// Pump writes the backlog and then live messages, each id at most once.
// It returns when ctx ends, the subscription closes or a write fails.
func Pump(ctx context.Context, w *bufio.Writer, cur *Cursor, backlog []models.Message, sub *Subscription, heartbeat time.Duration, sent func(models.Message)) error {
	send := func(msg models.Message) error {
		if !cur.Accept(msg.ID) {
			return nil
		}
		data, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		if err := WriteEvent(w, msg.ID, "message", data); err != nil {
			return err
		}
		if sent != nil {
			sent(msg)
		}
		return nil
	}

	if err := WriteComment(w, "connected"); err != nil {
		return err
	}
	for _, msg := range backlog {
		if err := send(msg); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if heartbeat <= 0 {
		heartbeat = 15 * time.Second
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-sub.C:
			if !ok {
				return nil
			}
			if err := send(msg); err != nil {
				return err
			}
		case <-ticker.C:
			if err := WriteComment(w, "keep-alive"); err != nil {
				return err
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
}
