package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/locksmith/internal/ui/output"
	"go.trai.ch/locksmith/internal/ui/style"
)

// locationKeys name the lockfile or project a record is about.
// Their value is printed after the message in parentheses.
var locationKeys = map[string]bool{
	"path":   true,
	"prefix": true,
	"dir":    true,
}

// detailKey is printed on its own indented line below the message.
const detailKey = "error"

// PrettyHandler is a slog.Handler that writes one coloured line per record,
// followed by indented detail lines.
type PrettyHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	theme style.Theme
	level slog.Leveler
	attrs []scopedAttr
	group string
}

// scopedAttr is an attribute together with the group open when it was added.
type scopedAttr struct {
	group string
	attr  slog.Attr
}

// NewPrettyHandler creates a PrettyHandler writing to w (stderr when nil).
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		mu:    &sync.Mutex{},
		w:     w,
		theme: style.NewTheme(output.NewRenderer(w)),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// record is a log record split into its printed parts.
type record struct {
	location string
	fields   []string
	details  []string
}

func collect(rec *record, group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	value := attr.Value.String()
	switch {
	case group == "" && locationKeys[attr.Key]:
		rec.location = value
	case group == "" && attr.Key == detailKey:
		rec.details = append(rec.details, strings.Split(value, "\n")...)
	default:
		key := attr.Key
		if group != "" {
			key = group + "." + key
		}
		rec.fields = append(rec.fields, key+"="+value)
	}
}

// Handle formats and writes the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var rec record
	for _, sa := range h.attrs {
		collect(&rec, sa.group, sa.attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		collect(&rec, h.group, attr)
		return true
	})

	icon, tone := h.tone(r.Level)
	head := r.Message
	if icon != "" {
		head = icon + " " + head
	}
	if len(rec.fields) > 0 {
		head += " " + strings.Join(rec.fields, " ")
	}

	var b strings.Builder
	for i, line := range strings.Split(head, "\n") {
		if line != "" {
			b.WriteString(tone.Render(line))
		}
		if i == 0 && rec.location != "" {
			b.WriteString(" " + h.theme.Muted.Render("("+rec.location+")"))
		}
		b.WriteByte('\n')
	}
	for _, line := range rec.details {
		b.WriteString("    " + h.theme.Muted.Render(line) + "\n")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *PrettyHandler) tone(level slog.Level) (string, lipgloss.Style) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, h.theme.Bad
	case level >= slog.LevelWarn:
		return style.Warning, h.theme.Notice
	default:
		return "", h.theme.Muted
	}
}

// WithAttrs returns a handler that prints attrs with every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = h.attrs[:len(h.attrs):len(h.attrs)]
	for _, attr := range attrs {
		next.attrs = append(next.attrs, scopedAttr{group: h.group, attr: attr})
	}
	return &next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
// Grouped attributes are always printed as key=value pairs.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.group = name
	if h.group != "" {
		next.group = h.group + "." + name
	}
	return &next
}
