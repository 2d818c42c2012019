// Package helptext is the static string table behind the `help`
// operator (spec.md §1 "Out of scope: The help-text corpus", §4.6
// "Help"). It is intentionally thin: a name->text map and a formatter,
// the same shape as the teacher's cmd/dwscript help text and
// other_examples' robpike-ivy mobile/help.go (a flat topic->string
// table looked up by name, with a contents listing when no topic is
// given; an unknown topic gets a "No help available" line).
package helptext

import (
	"fmt"
	"sort"
	"strings"
)

var corpus = map[string]string{
	"+":           "(+ a b ...) sums its arguments; (+ ) is 0.",
	"-":           "(- a) negates a; (- a b ...) subtracts left to right.",
	"*":           "(* a b ...) multiplies its arguments; (* ) is 1.",
	"/":           "(/ a) is 1/a (or the matrix inverse); (/ a b ...) divides left to right.",
	"%":           "(% a b ...) folds the remainder left to right.",
	"pow":         "(pow base exp) raises base to exp.",
	"=":           "(= a b) tests equality; both arguments must be the same kind.",
	"!=":          "(!= a b) tests inequality.",
	"<":           "(< a b), (<= a b), (> a b), (>= a b) compare two same-kind values.",
	"if":          "(if cond then else) evaluates cond, then evaluates and returns then or else.",
	"and":         "(and a b ...) short-circuits on the first false argument.",
	"or":          "(or a b ...) short-circuits on the first true argument.",
	"not":         "(not a) negates a boolean.",
	"xor":         "(xor a b ...) folds boolean exclusive-or left to right.",
	"define":      "(define name expr) or (define (name params...) body) binds a value or procedure.",
	"lambda":      "(lambda (params...) body) creates a procedure capturing the current scope.",
	"quote":       "(quote expr) returns expr unevaluated.",
	"list":        "(list a b ...) collects its evaluated arguments into a list.",
	"cons":        "(cons a L) prepends a to list L.",
	"car":         "(car L) returns the first element of L.",
	"cdr":         "(cdr L) returns all but the first element of L.",
	"list-len":    "(list-len L) returns the number of elements in L.",
	"map":         "(map proc L1 ... Lk) applies a k-parameter procedure across k equal-length lists.",
	"reduce":      "(reduce proc init L) left-folds a 2-parameter procedure over L, starting from init.",
	"filter":      "(filter proc L) keeps elements of L for which the 1-parameter procedure returns true.",
	"sort":        "(sort L) sorts L ascending by its elements' total order.",
	"range-list":  "(range-list a b [step]) builds the list a, a+step, ... up to (not including) b.",
	"table":       "(table M) renders matrix M as a list of row-lists.",
	"matrix-make": "(matrix-make rows cols v1 v2 ...) builds a matrix from row-major cell values.",
}

// Help formats the entries for the given topics, or the full topic
// index when topics is empty (spec.md §4.6 "zero or more symbols").
func Help(topics []string) string {
	if len(topics) == 0 {
		names := make([]string, 0, len(corpus))
		for name := range corpus {
			names = append(names, name)
		}
		sort.Strings(names)
		return "Available topics: " + strings.Join(names, ", ")
	}

	var sb strings.Builder
	for i, topic := range topics {
		if i > 0 {
			sb.WriteString("\n")
		}
		if text, ok := corpus[topic]; ok {
			sb.WriteString(text)
		} else {
			fmt.Fprintf(&sb, "No help available for %q", topic)
		}
	}
	return sb.String()
}
