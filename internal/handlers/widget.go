package handlers

import (
	"fmt"
	"html/template"
)

// LoginWidget is the injected replacement for the third-party login widget the
// hosted frontend pulls in from global scope. The navigation shell renders
// whatever the widget mounts; the default mounts nothing.
type LoginWidget interface {
	MountHTML() template.HTML
}

type noLoginWidget struct{}

func (noLoginWidget) MountHTML() template.HTML { return "" }

func NoLoginWidget() LoginWidget { return noLoginWidget{} }

// ScriptLoginWidget mounts the hosted embeddable login widget by script tag.
type ScriptLoginWidget struct {
	ScriptURL          string
	APIBase            string
	RedirectAfterLogin string
}

func (w ScriptLoginWidget) MountHTML() template.HTML {
	markup := fmt.Sprintf(
		`<div id="blkx-login"></div><script src="%s" data-api-base="%s" data-redirect="%s" defer></script>`,
		template.HTMLEscapeString(w.ScriptURL),
		template.HTMLEscapeString(w.APIBase),
		template.HTMLEscapeString(w.RedirectAfterLogin),
	)
	return template.HTML(markup)
}
