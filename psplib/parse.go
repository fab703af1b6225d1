package psplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a PSPLIB ".sm" single-mode project scheduling file from r.
// It follows the fixed section order the format always uses: file
// metadata, problem metadata (projects/jobs/horizon/RESOURCES), PROJECT
// INFORMATION, PRECEDENCE RELATIONS, REQUESTS/DURATIONS, and
// RESOURCEAVAILABILITIES, each preceded by a line of '*' or '-' characters.
func Parse(r io.Reader) (Problem, error) {
	lines, err := readLines(r)
	if err != nil {
		return Problem{}, err
	}

	p := &cursor{lines: lines}

	var problem Problem
	if err := parseFileMetadata(p, &problem); err != nil {
		return Problem{}, err
	}
	if err := parseProblemMetadata(p, &problem); err != nil {
		return Problem{}, err
	}
	if err := parseProjectInfo(p, &problem); err != nil {
		return Problem{}, err
	}
	if err := parsePrecedenceRelations(p, &problem); err != nil {
		return Problem{}, err
	}
	if err := parseRequestDurations(p, &problem); err != nil {
		return Problem{}, err
	}
	if err := parseResourceAvailabilities(p, &problem); err != nil {
		return Problem{}, err
	}

	return problem, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

// cursor walks the line slice, skipping blank and separator ('*'/'-' only)
// lines as it goes.
type cursor struct {
	lines []string
	pos   int
}

func (c *cursor) skipSeparators() {
	for c.pos < len(c.lines) && isSeparatorOrBlank(c.lines[c.pos]) {
		c.pos++
	}
}

func isSeparatorOrBlank(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	for _, r := range trimmed {
		if r != '*' && r != '-' {
			return false
		}
	}

	return true
}

func (c *cursor) next() (string, error) {
	if c.pos >= len(c.lines) {
		return "", fmt.Errorf("%w: unexpected end of input", ErrMalformed)
	}
	line := c.lines[c.pos]
	c.pos++

	return line, nil
}

func (c *cursor) expectPrefix(prefix string) error {
	c.skipSeparators()
	line, err := c.next()
	if err != nil {
		return err
	}
	if !strings.HasPrefix(strings.TrimSpace(line), prefix) {
		return fmt.Errorf("%w: expected line starting with %q, got %q", ErrMalformed, prefix, line)
	}

	return nil
}

// keyValue splits a "key : value" line (value may contain further colons,
// e.g. a basedata filename) and returns the trimmed value.
func keyValue(line string) (string, error) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", fmt.Errorf("%w: expected %q in line %q", ErrMalformed, ":", line)
	}

	return strings.TrimSpace(line[idx+1:]), nil
}

func parseFileMetadata(c *cursor, p *Problem) error {
	c.skipSeparators()
	basedataLine, err := c.next()
	if err != nil {
		return err
	}
	basedata, err := keyValue(basedataLine)
	if err != nil {
		return err
	}
	p.FileWithBasedata = basedata

	rngLine, err := c.next()
	if err != nil {
		return err
	}
	rngValue, err := keyValue(rngLine)
	if err != nil {
		return err
	}
	rng, err := strconv.Atoi(strings.Fields(rngValue)[0])
	if err != nil {
		return fmt.Errorf("%w: initial rng: %v", ErrMalformed, err)
	}
	p.InitialRNG = rng

	return nil
}

func parseProblemMetadata(c *cursor, p *Problem) error {
	fields := []*int{&p.Projects, &p.Jobs, &p.Horizon}
	for _, dest := range fields {
		c.skipSeparators()
		line, err := c.next()
		if err != nil {
			return err
		}
		v, err := keyValue(line)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.Fields(v)[0])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		*dest = n
	}

	if err := c.expectPrefix("RESOURCES"); err != nil {
		return err
	}

	resourceFields := []*int{&p.Resources.Renewable, &p.Resources.Nonrenewable, &p.Resources.DoublyConstrained}
	for _, dest := range resourceFields {
		line, err := c.next()
		if err != nil {
			return err
		}
		v, err := keyValue(line)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.Fields(v)[0])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		*dest = n
	}

	return nil
}

func parseProjectInfo(c *cursor, p *Problem) error {
	if err := c.expectPrefix("PROJECT INFORMATION"); err != nil {
		return err
	}
	if _, err := c.next(); err != nil { // header row
		return err
	}

	for {
		if c.pos >= len(c.lines) || isSeparatorOrBlank(c.lines[c.pos]) {
			break
		}
		line, err := c.next()
		if err != nil {
			return err
		}
		nums, err := fieldsToInts(line)
		if err != nil {
			return err
		}
		if len(nums) < 6 {
			return fmt.Errorf("%w: project info row has %d fields, want >= 6", ErrMalformed, len(nums))
		}
		p.ProjectInfo = append(p.ProjectInfo, ProjectInfo{
			Number: nums[0], Jobs: nums[1], RelativeDate: nums[2], DueDate: nums[3], TardCost: nums[4], MPMTime: nums[5],
		})
	}

	return nil
}

func parsePrecedenceRelations(c *cursor, p *Problem) error {
	if err := c.expectPrefix("PRECEDENCE RELATIONS"); err != nil {
		return err
	}
	if _, err := c.next(); err != nil {
		return err
	}

	for {
		if c.pos >= len(c.lines) || isSeparatorOrBlank(c.lines[c.pos]) {
			break
		}
		line, err := c.next()
		if err != nil {
			return err
		}
		nums, err := fieldsToInts(line)
		if err != nil {
			return err
		}
		if len(nums) < 3 {
			return fmt.Errorf("%w: precedence row has %d fields, want >= 3", ErrMalformed, len(nums))
		}
		p.PrecedenceRelations = append(p.PrecedenceRelations, PrecedenceRelation{
			JobNumber: nums[0], ModeCount: nums[1], SuccessorCount: nums[2], Successors: append([]int(nil), nums[3:]...),
		})
	}

	return nil
}

func parseRequestDurations(c *cursor, p *Problem) error {
	if err := c.expectPrefix("REQUESTS/DURATIONS"); err != nil {
		return err
	}
	if _, err := c.next(); err != nil { // column header row
		return err
	}
	c.skipSeparators() // the "----" rule line between header and data

	for {
		if c.pos >= len(c.lines) || isSeparatorOrBlank(c.lines[c.pos]) {
			break
		}
		line, err := c.next()
		if err != nil {
			return err
		}
		nums, err := fieldsToInts(line)
		if err != nil {
			return err
		}
		if len(nums) < 7 {
			return fmt.Errorf("%w: request/duration row has %d fields, want >= 7", ErrMalformed, len(nums))
		}
		p.RequestDurations = append(p.RequestDurations, RequestDuration{
			JobNumber: nums[0], Mode: nums[1], Duration: nums[2],
			R1: nums[3], R2: nums[4], R3: nums[5], R4: nums[6],
		})
	}

	return nil
}

func parseResourceAvailabilities(c *cursor, p *Problem) error {
	if err := c.expectPrefix("RESOURCEAVAILABILITIES"); err != nil {
		return err
	}
	if _, err := c.next(); err != nil { // column header row
		return err
	}

	c.skipSeparators()
	line, err := c.next()
	if err != nil {
		return err
	}
	nums, err := fieldsToInts(line)
	if err != nil {
		return err
	}
	if len(nums) < 4 {
		return fmt.Errorf("%w: resource availability row has %d fields, want >= 4", ErrMalformed, len(nums))
	}
	p.ResourceAvailabilities = ResourceAvailability{R1: nums[0], R2: nums[1], R3: nums[2], R4: nums[3]}

	return nil
}

func fieldsToInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformed, f)
		}
		nums[i] = n
	}

	return nums, nil
}
