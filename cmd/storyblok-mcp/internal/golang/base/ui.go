// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package base

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdout is where the commands write their results.
var Stdout io.Writer = os.Stdout

// YesNo asks the user to confirm on the terminal.
func YesNo(message string) bool {
	return YesNoWR(os.Stdout, os.Stdin, message)
}

// YesNoWR writes the message to w and reads the answer from r.  An empty
// answer is "no".
func YesNoWR(w io.Writer, r io.Reader, message string) bool {
	const pleaseAnswerYN = "Please answer yes or no and press Enter or Return."
	for {
		fmt.Fprint(w, message, "? (y/N) ")
		var resp string
		_, err := fmt.Fscanln(r, &resp)
		if err != nil {
			// there's no proper way to check for unexpected newline error.
			if strings.EqualFold(err.Error(), "unexpected newline") || err == io.EOF {
				return false
			}
			fmt.Fprintln(w, pleaseAnswerYN)
			continue
		}
		resp = strings.TrimSpace(resp)
		if len(resp) > 0 {
			switch strings.ToLower(resp)[0] {
			case 'y':
				return true
			case 'n':
				return false
			}
		}
		fmt.Fprintln(w, pleaseAnswerYN)
	}
}

// PrintJSON writes v to w as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
