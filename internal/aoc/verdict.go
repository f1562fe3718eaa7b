// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aoc

import "strings"

// Verdict is the website's response to a submitted answer.
type Verdict uint8

const (
	Unknown Verdict = iota
	Correct
	Incorrect
	TooRecent
	WrongLevel
)

var verdictNames = [...]string{
	Unknown:    "unknown",
	Correct:    "correct",
	Incorrect:  "incorrect",
	TooRecent:  "too recent",
	WrongLevel: "wrong level",
}

func (v Verdict) String() string {
	if int(v) < len(verdictNames) {
		return verdictNames[v]
	}
	return verdictNames[Unknown]
}

// Definitive reports whether v settles the answer for good.
// Rate limiting and level mismatches say nothing about the answer itself.
func (v Verdict) Definitive() bool {
	return v == Correct || v == Incorrect
}

// ClassifyVerdict maps the text of a submission response to a Verdict.
func ClassifyVerdict(s string) Verdict {
	switch {
	case strings.Contains(s, "That's the right answer"):
		return Correct
	case strings.Contains(s, "That's not the right answer"):
		return Incorrect
	case strings.Contains(s, "You gave an answer too recently"):
		return TooRecent
	case strings.Contains(s, "You don't seem to be solving the right level"):
		return WrongLevel
	}
	return Unknown
}
