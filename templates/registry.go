package templates

import "github.com/a-h/templ"

// Renderer turns a normalized invitation view into a displayable document.
type Renderer func(view InvitationView) templ.Component

// DefaultTemplateID is the renderer used when an invitation carries a
// template id the registry does not know.
const DefaultTemplateID = "classic-elegance"

var renderers = map[string]Renderer{
	"classic-elegance": ClassicElegance,
	"rustic-garden":    RusticGarden,
	"modern-minimal":   ModernMinimal,
	"floral-romance":   FloralRomance,
	"traditional-jawa": TraditionalJawa,
}

// Select returns the renderer for templateID, falling back to the default
// for any unknown id. Template ids are stored unvalidated, so a historical
// record may reference a retired template; showing the default page beats
// showing a broken one.
func Select(templateID string) Renderer {
	if r, ok := renderers[templateID]; ok {
		return r
	}
	return renderers[DefaultTemplateID]
}

// RegisteredIDs lists every template id the registry can render.
func RegisteredIDs() []string {
	ids := make([]string, 0, len(renderers))
	for id := range renderers {
		ids = append(ids, id)
	}
	return ids
}
