package main

import (
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var whenParser = newWhenParser()

func newWhenParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// parseWhen parses a natural-language time bound like "3 days ago" or
// "yesterday" into an absolute time.Time.
func parseWhen(s string) (time.Time, error) {
	result, err := whenParser.Parse(s, time.Now())
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", s, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("could not understand time %q", s)
	}
	return result.Time, nil
}
