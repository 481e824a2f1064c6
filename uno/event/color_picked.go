package event

import "github.com/ratel-online/uno/uno/card/color"

type ColorPickedPayload struct {
	PlayerName string
	Color      color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

func (b *Bus) EmitColorPicked(payload ColorPickedPayload) {
	b.each(func(l interface{}) {
		if listener, ok := l.(ColorPickedListener); ok {
			listener.OnColorPicked(payload)
		}
	})
}
