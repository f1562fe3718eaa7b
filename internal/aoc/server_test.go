// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aoc_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/parsex/internal/aoc"
)

const (
	testSession = "s3cr3t"
	testYear    = 2021
)

const dayPage = `<!DOCTYPE html>
<html><head><title>Day 1 - Advent of Code 2021</title></head>
<body><main>
<article class="day-desc"><h2>--- Day 1: Sonar Sweep ---</h2>
<p>Count the number of times a depth measurement <em>increases</em>.</p>
<pre><code>199
200
</code></pre>
<ul><li>one</li><li>two</li></ul>
</article>
<p>Your puzzle answer was <code>7</code>.</p>
<article class="day-desc"><h2 id="part2">--- Part Two ---</h2>
<p>Consider sums of a <code>three-measurement</code> window.</p>
</article>
</main></body></html>`

// fakeSite serves the puzzle endpoints for day 1 of testYear.
type fakeSite struct {
	*httptest.Server

	mu      sync.Mutex
	answers []string
	levels  []string
	correct string
}

func newFakeSite(t *testing.T, correct string) *fakeSite {
	t.Helper()
	s := &fakeSite{correct: correct}
	mux := http.NewServeMux()
	base := fmt.Sprintf("/%d/day/1", testYear)

	mux.HandleFunc("GET "+base+"/input", func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(w, r) {
			return
		}
		fmt.Fprint(w, "1\n3\n2\n5\n")
	})
	mux.HandleFunc("GET "+base, func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(w, r) {
			return
		}
		fmt.Fprint(w, dayPage)
	})
	mux.HandleFunc("POST "+base+"/answer", func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(w, r) {
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.answers = append(s.answers, r.PostForm.Get("answer"))
		s.levels = append(s.levels, r.PostForm.Get("level"))
		s.mu.Unlock()

		msg := "That's not the right answer. If you're stuck, make sure you're using the full input data."
		if r.PostForm.Get("answer") == s.correct {
			msg = "That's the right answer! You are one gold star closer to finding the sleigh keys."
		}
		fmt.Fprintf(w, "<html><body><main><article><p>%s</p></article></main></body></html>", msg)
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func (s *fakeSite) authorized(w http.ResponseWriter, r *http.Request) bool {
	c, err := r.Cookie("session")
	if err != nil || c.Value != testSession {
		http.Error(w, "Puzzle inputs differ by user.  Please log in to get your puzzle input.", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *fakeSite) submissions() ([]string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.answers...), append([]string(nil), s.levels...)
}

func (s *fakeSite) client(session string) *aoc.Client {
	return aoc.NewClient(s.URL+"/", testYear, session, 5*time.Second)
}
