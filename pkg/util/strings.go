package util

import "strings"

var newlineReplacer = strings.NewReplacer("\r\n", "", "\r", "", "\n", "")

// StripNewlines removes every carriage return and line feed from s.
func StripNewlines(s string) string {
	return newlineReplacer.Replace(s)
}
