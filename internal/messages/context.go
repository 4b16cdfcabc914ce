package messages

import (
	"context"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type printerKey struct{}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *message.Printer) context.Context {
	return context.WithValue(ctx, printerKey{}, p)
}

// FromContext returns the printer stored by NewContext, or an English
// printer when ctx carries none.
func FromContext(ctx context.Context) *message.Printer {
	if p, ok := ctx.Value(printerKey{}).(*message.Printer); ok && p != nil {
		return p
	}
	return english()
}

var english = sync.OnceValue(func() *message.Printer {
	c, err := New("en")
	if err != nil {
		return message.NewPrinter(language.English)
	}
	return c.Default()
})
