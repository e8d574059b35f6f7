package application

import (
	"campusevents/internal/domain"
	"campusevents/internal/ports/output"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient message shown to the acting user.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier turns action outcomes into localized notifications. Message keys
// are "notify.<action>.success|failure.title|description" and
// "errors.<domain code>".
type Notifier struct {
	translator output.Translator
}

func NewNotifier(translator output.Translator) *Notifier {
	return &Notifier{translator: translator}
}

func (n *Notifier) Success(locale, action string, data map[string]any) Notification {
	return Notification{
		Title:       n.translator.T(locale, "notify."+action+".success.title", data),
		Description: n.translator.T(locale, "notify."+action+".success.description", data),
		Variant:     VariantDefault,
	}
}

// Failure describes err with its domain message, or with the action's generic
// failure text when err is not a domain error.
func (n *Notifier) Failure(locale, action string, err error) Notification {
	desc := ""
	if code := domain.Code(err); code != "" {
		desc = n.translator.T(locale, "errors."+code, nil)
	} else {
		desc = n.translator.T(locale, "notify."+action+".failure.description", nil)
	}
	return Notification{
		Title:       n.translator.T(locale, "notify."+action+".failure.title", nil),
		Description: desc,
		Variant:     VariantDestructive,
	}
}

// Message renders a single key, for labels that are not notifications.
func (n *Notifier) Message(locale, key string, data map[string]any) string {
	return n.translator.T(locale, key, data)
}
