package resp

import "strings"

// Per-action success message templates with named placeholders.
// Views override individual actions or extend the context; an unknown
// action renders as "", never an error.

type MsgContext struct {
	Resource       string
	ResourcePlural string
	Adverb         string // e.g. " partially" for partial updates
	Username       string
	ListScope      string
}

type Messages map[string]string

var DefaultMessages = Messages{
	"list":     "{resource_plural}",
	"retrieve": "{resource} details",
	"create":   "{resource} created successfully.",
	"update":   "{resource}{adverb} updated successfully.",
	"destroy":  "{resource} deleted successfully.",
}

// Override returns a copy of m with one template replaced.
func (m Messages) Override(action, tmpl string) Messages {
	out := make(Messages, len(m))
	for k, v := range m {
		out[k] = v
	}
	out[action] = tmpl
	return out
}

// Render formats the template for action with the given context.
func (m Messages) Render(action string, ctx MsgContext) string {
	tmpl, ok := m[action]
	if !ok {
		return ""
	}
	if ctx.ResourcePlural == "" && ctx.Resource != "" {
		ctx.ResourcePlural = ctx.Resource + "s"
	}
	r := strings.NewReplacer(
		"{resource}", ctx.Resource,
		"{resource_plural}", ctx.ResourcePlural,
		"{adverb}", ctx.Adverb,
		"{username}", ctx.Username,
		"{list_scope}", ctx.ListScope,
	)
	return r.Replace(tmpl)
}
