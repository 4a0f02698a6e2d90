// Package decoder turns free-form generator output into room template
// candidates. Markup is stripped, the content policy is applied, and the
// remaining JSON must describe a valid template.
package decoder

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	fencePattern = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)```")
)

// Size accepts either {"width":w,"height":h} or a "WxH" string
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Size) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := ParseSize(text)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	type plain Size
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "size must be an object or WxH string")
	}
	*s = Size(p)
	return nil
}

// ParseSize reads sizes like "10x8", "10 X 8" or "10×8"
func ParseSize(text string) (Size, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == 'x' || r == 'X' || r == '×'
	})
	if len(parts) != 2 {
		return Size{}, errors.InvalidArgumentf("size %q is not WxH", text)
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Size{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid width in %q", text)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Size{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid height in %q", text)
	}
	return Size{Width: w, Height: h}, nil
}

// Candidate is the wire shape generators produce
type Candidate struct {
	Name        string `json:"name"`
	Size        Size   `json:"size"`
	Description string `json:"description"`
	Prefab      string `json:"prefab,omitempty"`
}

// ToEntity converts to a validated room template
func (c *Candidate) ToEntity() (*entities.RoomTemplate, error) {
	t := &entities.RoomTemplate{
		Name:        strings.TrimSpace(c.Name),
		Size:        entities.Size{Width: c.Size.Width, Height: c.Size.Height},
		AssetRef:    strings.TrimSpace(c.Prefab),
		Description: strings.TrimSpace(c.Description),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Config configures a Decoder
type Config struct {
	Policy Policy
	Logger *zap.Logger
}

// Decoder is safe for concurrent use
type Decoder struct {
	policy Policy
	logger *zap.Logger
}

// New creates a decoder. Without a policy everything is allowed.
func New(cfg *Config) *Decoder {
	d := &Decoder{policy: AllowAll, logger: zap.NewNop()}
	if cfg != nil {
		if cfg.Policy != nil {
			d.policy = cfg.Policy
		}
		if cfg.Logger != nil {
			d.logger = cfg.Logger
		}
	}
	return d
}

// Decode returns the candidate template and true, or nil and false when the
// text is empty, disallowed, unparseable or describes an invalid template.
func (d *Decoder) Decode(text string) (*entities.RoomTemplate, bool) {
	t, err := d.DecodeTemplate(text)
	if err != nil {
		d.logger.Warn("rejected generated room template", zap.Error(err))
		return nil, false
	}
	return t, true
}

// DecodeTemplate is Decode with the rejection reason. Every error is
// InvalidArgument.
func (d *Decoder) DecodeTemplate(text string) (*entities.RoomTemplate, error) {
	cleaned := Sanitize(text)
	if cleaned == "" {
		return nil, errors.InvalidArgument("generated text is empty")
	}
	if !d.policy.Allow(cleaned) {
		return nil, errors.InvalidArgument("generated text contains prohibited content")
	}

	var c Candidate
	if err := json.Unmarshal([]byte(extractObject(cleaned)), &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "generated text is not a room template")
	}

	t, err := c.ToEntity()
	if err != nil {
		return nil, errors.Wrap(err, "generated room template is invalid")
	}

	d.logger.Debug("decoded generated room template", zap.String("name", t.Name))
	return t, nil
}

// Sanitize unwraps a fenced code block, drops markup tags and trims space
func Sanitize(text string) string {
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	return strings.TrimSpace(tagPattern.ReplaceAllString(text, ""))
}

// extractObject trims any chatter around the outermost JSON object
func extractObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return text
	}
	return text[start : end+1]
}
