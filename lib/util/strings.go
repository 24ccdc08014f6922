package util

import (
	"strings"
)

// joins the listed strings together with the given separator,
// but only if the string is not empty
// e.g. CondJoin(" ", "foo", "", "bar") results in "foo bar"
// whereas strings.Join([]string{"foo", "", "bar"}, " ") would result in "foo  bar"
func CondJoin(sep string, strs ...string) string {
	out := ""
	for _, s := range strs {
		if s != "" {
			if out != "" {
				out += sep
			}
			out += s
		}
	}
	return out
}

func MaybeStr(cond bool, str string) string {
	return ChooseStr(cond, str, "")
}

func ChooseStr(cond bool, trueStr, falseStr string) string {
	if cond {
		return trueStr
	}
	return falseStr
}

// returns the first non-empty string, or the empty string
func CoalesceStr(strs ...string) string {
	for _, s := range strs {
		if len(s) > 0 {
			return s
		}
	}
	return ""
}

// strips a trailing bracketed suffix, e.g. "name[50]" becomes "name"
func TrimBracketSuffix(s string) string {
	if idx := strings.IndexByte(s, '['); idx >= 0 {
		return s[:idx]
	}
	return s
}
