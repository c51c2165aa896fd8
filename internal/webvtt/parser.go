package webvtt

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	space = ' '
	tab   = '\t'
	lf    = '\n'
	cr    = '\r'

	// arrowToken separates a cue's start and stop times. Its lexeme may
	// not appear in an identifier line, which is how the two line kinds
	// are told apart.
	arrowToken = "-->"

	headerToken = "WEBVTT"
)

// Parser is a streaming WebVTT scanner. It reads one character at a
// time from a Reader and holds at most one character of pushback; the
// grammar never needs more than one token of lookahead.
//
// Call Init once to validate the stream header, then Parse repeatedly
// to extract cues until it returns io.EOF. A Parser is not safe for
// concurrent use; independent Parsers over independent Readers are.
type Parser struct {
	r     Reader
	unget int // pushed-back character, -1 when empty
}

// NewParser returns a Parser reading from r. The Parser never closes
// or otherwise manages r.
func NewParser(r Reader) *Parser {
	return &Parser{r: r, unget: -1}
}

func (p *Parser) getChar() (byte, error) {
	if p.unget >= 0 {
		c := byte(p.unget)
		p.unget = -1
		return c, nil
	}
	return p.r.GetChar()
}

// ungetChar returns c to the stream; the next getChar re-delivers it.
// Capacity is exactly one character.
func (p *Parser) ungetChar(c byte) {
	p.unget = int(c)
}

// Init validates the stream header: an optional UTF-8 BOM, the literal
// WEBVTT token, optional trailing text on the header line, and the
// blank line separating the header from the first cue. A stream that
// ends right after the header line is a degenerate but valid empty
// document. A failed Init invalidates the Parser.
func (p *Parser) Init() error {
	if err := p.parseBOM(); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty stream", ErrMalformed)
		}
		return err
	}

	// Match "WEBVTT" one character at a time rather than line-wise, to
	// defend against binary streams that never produce a terminator.
	for i := 0; i < len(headerToken); i++ {
		c, err := p.getChar()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: missing WEBVTT header", ErrMalformed)
			}
			return err
		}
		if c != headerToken[i] {
			return fmt.Errorf("%w: missing WEBVTT header", ErrMalformed)
		}
	}

	line, err := p.parseLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil // bare header at end of stream: weird but valid
		}
		return err
	}

	// Free-form text may follow the WEBVTT token on the same line, but
	// it must be set off by a space or tab.
	if line != "" {
		if c := line[0]; c != space && c != tab {
			return fmt.Errorf("%w: unexpected %q after WEBVTT token", ErrMalformed, string(c))
		}
	}

	// The header line must be separated from the first cue by a blank
	// line.
	line, err = p.parseLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil // weird but we allow it
		}
		return err
	}
	if line != "" {
		return fmt.Errorf("%w: expected blank line after WEBVTT header", ErrMalformed)
	}

	return nil
}

// Parse extracts the next cue from the stream into cue, overwriting
// every field. It returns io.EOF when the cue sequence is exhausted
// (no cue produced), or an error wrapping ErrMalformed on a grammar
// violation. Reaching end of stream inside a started cue block is a
// grammar violation, not io.EOF.
func (p *Parser) Parse(cue *Cue) error {
	// Skip to the first non-blank line. End of stream here is the
	// normal termination of the cue sequence.
	var line string
	for {
		var err error
		line, err = p.parseLine()
		if err != nil {
			return err
		}
		if line != "" {
			break
		}
	}

	// A cue block is an optional identifier line followed by a timings
	// line; the timings line is the one carrying the arrow token.
	arrow := strings.Index(line, arrowToken)
	if arrow != -1 {
		cue.Identifier = ""
	} else {
		cue.Identifier = line

		var err error
		line, err = p.parseLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: stream ended before timings line", ErrMalformed)
			}
			return err
		}

		arrow = strings.Index(line, arrowToken)
		if arrow == -1 {
			return fmt.Errorf("%w: expected timings line after identifier %q", ErrMalformed, cue.Identifier)
		}
	}

	if err := parseTimingsLine(line, arrow, cue); err != nil {
		return err
	}

	// The payload is every non-empty line up to a blank line or end of
	// stream.
	cue.Payload = cue.Payload[:0]
	for {
		line, err := p.parseLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if line == "" {
			break
		}
		cue.Payload = append(cue.Payload, line)
	}

	if len(cue.Payload) == 0 {
		return fmt.Errorf("%w: cue has no payload", ErrMalformed)
	}

	return nil
}

// parseBOM consumes an optional 3-byte UTF-8 byte order mark. A first
// byte that does not open a BOM is pushed back and treated as content.
// A BOM that matches its first byte but breaks off later is fatal: the
// pushback buffer holds one character, so the already-consumed prefix
// cannot be returned to the stream.
func (p *Parser) parseBOM() error {
	const bom = "\xEF\xBB\xBF"

	for i := 0; i < len(bom); i++ {
		c, err := p.getChar()
		if err != nil {
			return err
		}
		if c != bom[i] {
			if i == 0 { // no BOM present
				p.ungetChar(c)
				return nil
			}
			return fmt.Errorf("%w: truncated byte order mark", ErrMalformed)
		}
	}

	return nil
}

// parseLineTerminator finishes the terminator opened by c, which is
// already known to be LF or CR. LF stands alone; CR absorbs an
// immediately following LF, and anything else is pushed back as the
// start of the next line. End of stream right after a CR is a valid
// line end.
func (p *Parser) parseLineTerminator(c byte) error {
	if c == lf {
		return nil
	}

	c, err := p.getChar()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	if c != lf {
		p.ungetChar(c)
	}

	return nil
}

// parseLine accumulates characters up to a line terminator or end of
// stream. io.EOF is returned only when the stream ends with nothing
// accumulated; a trailing line without a terminator is still a line.
func (p *Parser) parseLine() (string, error) {
	var buf []byte

	for {
		c, err := p.getChar()
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				return string(buf), nil
			}
			return "", err
		}

		if c == lf || c == cr {
			if err := p.parseLineTerminator(c); err != nil {
				return "", err
			}
			return string(buf), nil
		}

		buf = append(buf, c)
	}
}

// parseTimingsLine fills cue's start time, stop time, and settings
// from a line whose arrow token starts at index arrow. The line is
// sliced into the region before the arrow (start time plus optional
// whitespace) and the region after it (stop time, whitespace,
// settings); each region is scanned against its own bounds.
func parseTimingsLine(line string, arrow int, cue *Cue) error {
	if arrow < 0 || arrow >= len(line) {
		return fmt.Errorf("%w: timings line has no arrow token", ErrMalformed)
	}

	startSeg := line[:arrow]

	t, pos, err := parseTime(startSeg, 0)
	if err != nil {
		return err
	}
	cue.StartTime = t

	// Only whitespace may sit between the start time and the arrow.
	for ; pos < len(startSeg); pos++ {
		if c := startSeg[pos]; c != space && c != tab {
			return fmt.Errorf("%w: unexpected %q before arrow token", ErrMalformed, string(c))
		}
	}

	stopSeg := line[arrow+len(arrowToken):]

	t, pos, err = parseTime(stopSeg, 0)
	if err != nil {
		return err
	}
	cue.StopTime = t

	settings, err := parseSettings(stopSeg, pos)
	if err != nil {
		return err
	}
	cue.Settings = settings

	return nil
}

// parseTime scans one timestamp from seg starting at pos and returns
// the normalized time and the cursor just past it. Three forms are
// accepted, told apart by the colons that follow the first number:
//
//	SS[.sss]          seconds count, no upper bound, normalized
//	MM:SS[.sss]       both components < 60
//	HH:MM:SS[.sss]    minutes and seconds < 60, hours unbounded
func parseTime(seg string, pos int) (Time, int, error) {
	var t Time

	// Whitespace may precede the timestamp.
	for pos < len(seg) && (seg[pos] == space || seg[pos] == tab) {
		pos++
	}

	// The first number could be hours, minutes, or a bare seconds
	// count; we don't know which until we look for colons.
	val, pos, err := parseNumber(seg, pos)
	if err != nil {
		return Time{}, pos, err
	}

	if pos < len(seg) && seg[pos] == ':' {
		// Either HH:MM:SS or MM:SS.
		first := val
		pos++ // consume colon

		val, pos, err = parseNumber(seg, pos)
		if err != nil {
			return Time{}, pos, err
		}
		if val >= 60 { // either MM or SS
			return Time{}, pos, fmt.Errorf("%w: time component %d out of range", ErrMalformed, val)
		}

		if pos < len(seg) && seg[pos] == ':' {
			// HH:MM:SS
			t.Hours = first
			t.Minutes = val // vetted above
			pos++           // consume MM:SS colon

			val, pos, err = parseNumber(seg, pos)
			if err != nil {
				return Time{}, pos, err
			}
			if val >= 60 {
				return Time{}, pos, fmt.Errorf("%w: seconds %d out of range", ErrMalformed, val)
			}
			t.Seconds = val
		} else {
			// MM:SS; the hours were omitted because they were zero.
			if first >= 60 {
				return Time{}, pos, fmt.Errorf("%w: minutes %d out of range", ErrMalformed, first)
			}
			t.Hours = 0
			t.Minutes = first
			t.Seconds = val // vetted above
		}
	} else {
		// Bare seconds count; fold into hours/minutes/seconds.
		t.Seconds = val

		t.Minutes = t.Seconds / 60
		t.Seconds -= t.Minutes * 60

		t.Hours = t.Minutes / 60
		t.Minutes -= t.Hours * 60
	}

	// Optional fractional part: '.' followed by 1 to 3 digits, scaled
	// to milliseconds.
	if pos < len(seg) && seg[pos] == '.' {
		pos++ // consume full stop
		digitsStart := pos

		val, pos, err = parseNumber(seg, pos)
		if err != nil {
			return Time{}, pos, err
		}
		if digits := pos - digitsStart; digits > 3 || val >= 1000 {
			return Time{}, pos, fmt.Errorf("%w: milliseconds %d out of range", ErrMalformed, val)
		} else if digits == 1 {
			t.Milliseconds = val * 100
		} else if digits == 2 {
			t.Milliseconds = val * 10
		} else {
			t.Milliseconds = val
		}
	}

	// Anything glued to the end of the timestamp is junk.
	if pos < len(seg) {
		if c := seg[pos]; c != space && c != tab {
			return Time{}, pos, fmt.Errorf("%w: unexpected %q after timestamp", ErrMalformed, string(c))
		}
	}

	return t, pos, nil
}

// parseSettings scans whitespace-separated NAME:VALUE pairs from seg
// starting at pos until the end of the segment. Order and duplicates
// are preserved. The returned list is nil when the segment holds only
// whitespace.
func parseSettings(seg string, pos int) ([]Setting, error) {
	var settings []Setting

	for {
		// Whitespace precedes each pair; running out of segment here
		// is the normal exit.
		for pos < len(seg) && (seg[pos] == space || seg[pos] == tab) {
			pos++
		}
		if pos >= len(seg) {
			return settings, nil
		}

		// NAME is a contiguous run up to the colon separator.
		nameStart := pos
		for pos < len(seg) && seg[pos] != ':' {
			if c := seg[pos]; c == space || c == tab {
				return nil, fmt.Errorf("%w: whitespace in setting name %q", ErrMalformed, seg[nameStart:pos])
			}
			pos++
		}
		if pos >= len(seg) {
			return nil, fmt.Errorf("%w: setting %q missing ':' separator", ErrMalformed, seg[nameStart:pos])
		}

		name := seg[nameStart:pos]
		if name == "" {
			return nil, fmt.Errorf("%w: setting has empty name", ErrMalformed)
		}
		pos++ // consume colon

		// VALUE runs to whitespace or end of segment; the colon is
		// reserved as the separator and may not reappear.
		valueStart := pos
		for pos < len(seg) {
			c := seg[pos]
			if c == space || c == tab {
				break
			}
			if c == ':' {
				return nil, fmt.Errorf("%w: unexpected ':' in value of setting %q", ErrMalformed, name)
			}
			pos++
		}

		value := seg[valueStart:pos]
		if value == "" {
			return nil, fmt.Errorf("%w: setting %q has empty value", ErrMalformed, name)
		}

		settings = append(settings, Setting{Name: name, Value: value})
	}
}

// parseNumber scans a run of ASCII digits from seg starting at pos.
// No sign, decimal point, or grouping is consumed. A value past the
// 32-bit signed maximum is an overflow.
func parseNumber(seg string, pos int) (int, int, error) {
	if pos >= len(seg) || !isDigit(seg[pos]) {
		return 0, pos, fmt.Errorf("%w: expected digit", ErrMalformed)
	}

	var val int64
	for pos < len(seg) && isDigit(seg[pos]) {
		val = val*10 + int64(seg[pos]-'0')
		if val > math.MaxInt32 {
			return 0, pos, fmt.Errorf("%w: number overflow", ErrMalformed)
		}
		pos++
	}

	return int(val), pos, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
