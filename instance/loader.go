package instance

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/wspplanner/matrix"
	"github.com/katalvlaran/wspplanner/planner"
	"github.com/katalvlaran/wspplanner/predicate"
)

// Option configures Load.
type Option func(*config)

type config struct {
	warn io.Writer
}

func defaultConfig() config { return config{warn: io.Discard} }

// WithWarnWriter sets where unrecognized constraint lines are reported
// (§6 "ignored, warning permitted"). Defaults to io.Discard.
func WithWarnWriter(w io.Writer) Option {
	return func(c *config) { c.warn = w }
}

var groupPattern = regexp.MustCompile(`\(([^)]*)\)`)

// Load parses the §6 instance-file grammar into a *planner.Instance.
func Load(r io.Reader, opts ...Option) (*planner.Instance, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	sc := bufio.NewScanner(r)
	lines := make([]string, 0, 64)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: reading input: %w: %v", ErrMalformed, err)
	}

	idx := 0
	nextNonBlank := func() (string, bool) {
		for idx < len(lines) {
			line := lines[idx]
			idx++
			if strings.TrimSpace(line) == "" {
				continue
			}

			return line, true
		}

		return "", false
	}

	k, err := parseHeader(nextNonBlank, "#Steps:")
	if err != nil {
		return nil, err
	}
	n, err := parseHeader(nextNonBlank, "#Users:")
	if err != nil {
		return nil, err
	}
	c, err := parseHeader(nextNonBlank, "#Constraints:")
	if err != nil {
		return nil, err
	}

	header, ok := nextNonBlank()
	if !ok || strings.TrimSpace(header) != "Authorizations:" {
		return nil, fmt.Errorf("instance: expected %q header: %w", "Authorizations:", ErrMalformed)
	}

	// The Authorizations block is staged through a matrix.Dense(n, k) bit
	// matrix before being transposed into per-step auth lists below: reusing
	// the teacher's dense-matrix type keeps the on-disk row-major grammar
	// and the model's column-major (per-step) view cleanly separated.
	bitMatrix, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, fmt.Errorf("instance: allocating %dx%d authorization matrix: %w", n, k, ErrMalformed)
	}
	for u := 0; u < n; u++ {
		line, ok := nextNonBlank()
		if !ok {
			return nil, fmt.Errorf("instance: expected %d authorization rows, found %d: %w", n, u, ErrMalformed)
		}
		colonIdx := strings.Index(line, ":")
		if colonIdx < 0 {
			return nil, fmt.Errorf("instance: authorization row %d missing ':': %w", u+1, ErrMalformed)
		}
		bits := strings.Fields(line[colonIdx+1:])
		if len(bits) != k {
			return nil, fmt.Errorf("instance: authorization row %d has %d bits, want %d: %w", u+1, len(bits), k, ErrMalformed)
		}
		for s, bit := range bits {
			switch bit {
			case "1":
				_ = bitMatrix.Set(u, s, 1)
			case "0":
				// not authorized; matrix.NewDense already zero-fills.
			default:
				return nil, fmt.Errorf("instance: authorization row %d has non-binary value %q: %w", u+1, bit, ErrMalformed)
			}
		}
	}

	auth := make([][]int, k)
	for s := range auth {
		auth[s] = make([]int, 0, n)
		for u := 0; u < n; u++ {
			v, _ := bitMatrix.At(u, s)
			if v != 0 {
				auth[s] = append(auth[s], u)
			}
		}
	}

	header, ok = nextNonBlank()
	if !ok || strings.TrimSpace(header) != "Constraints:" {
		return nil, fmt.Errorf("instance: expected %q header: %w", "Constraints:", ErrMalformed)
	}

	preds := make([]predicate.Scoped, 0, c)
	for {
		line, ok := nextNonBlank()
		if !ok {
			break
		}
		p, recognized, err := parseConstraint(line, k, n)
		if err != nil {
			return nil, err
		}
		if !recognized {
			fmt.Fprintf(cfg.warn, "instance: unrecognized constraint line ignored: %q\n", line)

			continue
		}
		preds = append(preds, p)
	}

	return planner.NewInstance(k, n, auth, predicate.NewSet(preds...)), nil
}

func parseHeader(next func() (string, bool), prefix string) (int, error) {
	line, ok := next()
	if !ok {
		return 0, fmt.Errorf("instance: expected %q header: %w", prefix, ErrMalformed)
	}
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, prefix) {
		return 0, fmt.Errorf("instance: expected %q header, got %q: %w", prefix, line, ErrMalformed)
	}
	val := strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("instance: %q value %q is not an integer: %w", prefix, val, ErrMalformed)
	}

	return n, nil
}

func oneBasedSteps(fields []string, k int) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("instance: step id %q is not an integer: %w", f, ErrMalformed)
		}
		v--
		if v < 0 || v >= k {
			return nil, fmt.Errorf("instance: step id %d out of range [1,%d]: %w", v+1, k, ErrMalformed)
		}
		out[i] = v
	}

	return out, nil
}

func oneBasedUsers(fields []string, n int) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("instance: user id %q is not an integer: %w", f, ErrMalformed)
		}
		v--
		if v < 0 || v >= n {
			return nil, fmt.Errorf("instance: user id %d out of range [1,%d]: %w", v+1, n, ErrMalformed)
		}
		out[i] = v
	}

	return out, nil
}

// parseConstraint parses one constraint line per §6's grammar. recognized
// is false (with a nil error) when the line's leading keyword is none of
// the six known kinds, so the caller can warn and skip it.
func parseConstraint(line string, k, n int) (predicate.Scoped, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false, nil
	}

	switch {
	case fields[0] == "sod":
		return parseSoDBoD(fields, k, predicate.SoD)
	case fields[0] == "bod":
		return parseSoDBoD(fields, k, predicate.BoD)
	case fields[0] == "at" && len(fields) > 1 && fields[1] == "most":
		return parseAtMost(fields, k)
	case fields[0] == "assignment-dependent":
		return parseAssignmentDependent(fields, k, n)
	case fields[0] == "wang-li":
		return parseWangLi(line, fields, k, n)
	case fields[0] == "sual":
		return parseSUAL(fields, k, n)
	default:
		return nil, false, nil
	}
}

func parseSoDBoD(fields []string, k int, ctor func(x, y int) predicate.Scoped) (predicate.Scoped, bool, error) {
	if len(fields) != 4 || fields[1] != "scope" {
		return nil, false, fmt.Errorf("instance: malformed %q line %q: %w", fields[0], strings.Join(fields, " "), ErrMalformed)
	}
	steps, err := oneBasedSteps(fields[2:4], k)
	if err != nil {
		return nil, false, err
	}

	return ctor(steps[0], steps[1]), true, nil
}

func parseAtMost(fields []string, k int) (predicate.Scoped, bool, error) {
	// at most <m> scope <s1> <s2> ...
	if len(fields) < 5 || fields[3] != "scope" {
		return nil, false, fmt.Errorf("instance: malformed %q line: %w", "at most", ErrMalformed)
	}
	m, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, false, fmt.Errorf("instance: at-most limit %q is not an integer: %w", fields[2], ErrMalformed)
	}
	if m <= 0 {
		return nil, false, fmt.Errorf("instance: at-most limit %d must be positive: %w", m, ErrMalformed)
	}
	steps, err := oneBasedSteps(fields[4:], k)
	if err != nil {
		return nil, false, err
	}

	return predicate.AtMost(m, steps), true, nil
}

func parseAssignmentDependent(fields []string, k, n int) (predicate.Scoped, bool, error) {
	// assignment-dependent scope <x> <y> users <u...> and <u...>
	if len(fields) < 7 || fields[1] != "scope" || fields[4] != "users" {
		return nil, false, fmt.Errorf("instance: malformed %q line: %w", "assignment-dependent", ErrMalformed)
	}
	steps, err := oneBasedSteps(fields[2:4], k)
	if err != nil {
		return nil, false, err
	}
	andIdx := -1
	for i := 5; i < len(fields); i++ {
		if fields[i] == "and" {
			andIdx = i

			break
		}
	}
	if andIdx < 0 {
		return nil, false, fmt.Errorf("instance: malformed %q line, missing %q: %w", "assignment-dependent", "and", ErrMalformed)
	}
	u1, err := oneBasedUsers(fields[5:andIdx], n)
	if err != nil {
		return nil, false, err
	}
	u2, err := oneBasedUsers(fields[andIdx+1:], n)
	if err != nil {
		return nil, false, err
	}

	return predicate.AssignmentDependent(steps[0], steps[1], u1, u2), true, nil
}

func parseWangLi(line string, fields []string, k, n int) (predicate.Scoped, bool, error) {
	// wang-li scope <s1> <s2> ... user groups (<u...>) (<u...>) ...
	if len(fields) < 4 || fields[1] != "scope" {
		return nil, false, fmt.Errorf("instance: malformed %q line: %w", "wang-li", ErrMalformed)
	}
	groupsIdx := strings.Index(line, "groups")
	if groupsIdx < 0 {
		return nil, false, fmt.Errorf("instance: malformed %q line, missing %q: %w", "wang-li", "groups", ErrMalformed)
	}

	scopeStart := strings.Index(line, "scope") + len("scope")
	userIdx := strings.Index(line, "user")
	if userIdx < 0 || userIdx < scopeStart {
		return nil, false, fmt.Errorf("instance: malformed %q line, missing %q: %w", "wang-li", "user", ErrMalformed)
	}
	steps, err := oneBasedSteps(strings.Fields(line[scopeStart:userIdx]), k)
	if err != nil {
		return nil, false, err
	}

	matches := groupPattern.FindAllStringSubmatch(line[groupsIdx:], -1)
	groups := make([][]int, 0, len(matches))
	for _, match := range matches {
		g, err := oneBasedUsers(strings.Fields(match[1]), n)
		if err != nil {
			return nil, false, err
		}
		groups = append(groups, g)
	}

	return predicate.WangLi(steps, groups), true, nil
}

func parseSUAL(fields []string, k, n int) (predicate.Scoped, bool, error) {
	// sual scope <s1> <s2> ... limit <L> users <u...>
	if len(fields) < 6 || fields[1] != "scope" {
		return nil, false, fmt.Errorf("instance: malformed %q line: %w", "sual", ErrMalformed)
	}
	limitIdx := -1
	for i := 2; i < len(fields); i++ {
		if fields[i] == "limit" {
			limitIdx = i

			break
		}
	}
	if limitIdx < 0 || limitIdx+2 >= len(fields) || fields[limitIdx+2] != "users" {
		return nil, false, fmt.Errorf("instance: malformed %q line, missing %q/%q: %w", "sual", "limit", "users", ErrMalformed)
	}
	steps, err := oneBasedSteps(fields[2:limitIdx], k)
	if err != nil {
		return nil, false, err
	}
	limit, err := strconv.Atoi(fields[limitIdx+1])
	if err != nil {
		return nil, false, fmt.Errorf("instance: sual limit %q is not an integer: %w", fields[limitIdx+1], ErrMalformed)
	}
	if limit <= 0 {
		return nil, false, fmt.Errorf("instance: sual limit %d must be positive: %w", limit, ErrMalformed)
	}
	superUsers, err := oneBasedUsers(fields[limitIdx+3:], n)
	if err != nil {
		return nil, false, err
	}

	return predicate.SUAL(steps, limit, superUsers), true, nil
}
