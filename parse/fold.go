// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import (
	"bufio"
	"io"
	"strings"
)

// unfoldLines reads raw content lines from r and rejoins folded lines: per
// RFC 5545 section 3.1, a line may be split across multiple physical lines
// by inserting a CRLF (or bare LF) immediately followed by a single space
// or tab, which the reader must strip back out. Both CRLF and bare-LF
// terminated input are accepted, since real-world producers disagree.
func unfoldLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		raw := strings.TrimSuffix(scanner.Text(), "\r")
		if len(raw) == 0 {
			continue
		}
		if (raw[0] == ' ' || raw[0] == '\t') && len(lines) > 0 {
			lines[len(lines)-1] += raw[1:]
			continue
		}
		lines = append(lines, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
